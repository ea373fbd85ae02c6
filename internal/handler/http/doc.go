// Package http wires the admin API endpoints onto the dispatcher:
// endpoint methods, the middleware stack (trace IDs, security and CORS
// headers, request audit logging) and the fold from service errors to
// response envelopes.
package http
