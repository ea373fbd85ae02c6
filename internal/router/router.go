package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/models"
)

const notFoundMessage = "API endpoint not found"
const serverErrorMessage = "internal server error occurred"

// HandlerFunc is the signature of an endpoint handler. A handler reports
// its outcome explicitly: a success envelope, or an error that the
// dispatcher folds into an error envelope through the configured
// [ErrorMapper]. Returning both nil values is a handler bug and yields a
// server error envelope.
type HandlerFunc func(c *Context) (*models.Response, error)

// Middleware is a pre-dispatch gate. It runs before route matching, in
// registration order, and returns true to continue the pipeline. A
// middleware that returns false aborts dispatch immediately and owns
// whatever response (if any) is written for that request.
type Middleware func(c *Context) bool

// ErrorMapper translates a handler error into an envelope. A nil return
// falls through to the dispatcher's server-error backstop.
type ErrorMapper func(c *Context, err error) *models.Response

// Router is the request dispatcher: an ordered middleware pipeline in
// front of a linear-scan route table with first-match-wins semantics.
// The table is append-only during setup and read-only once serving
// starts, which makes the Router safe for concurrent use.
//
// Exactly one envelope is written per dispatched request: by the matched
// handler's result, by the error fold, by the panic backstop, or by the
// not-found path. The only exception is a middleware abort, where the
// aborting middleware owns the response.
type Router struct {
	routes      []*Route
	middlewares []Middleware

	apiPrefix string
	debug     bool
	mapError  ErrorMapper
	logger    *logger.Logger
}

// Option configures a Router at construction time.
type Option func(*Router)

// WithAPIPrefix sets the path prefix stripped from incoming requests
// before matching (e.g. "/api"). A stripped-empty path becomes "/".
func WithAPIPrefix(prefix string) Option {
	return func(rt *Router) { rt.apiPrefix = prefix }
}

// WithDebug enables verbose fault reporting: server-error envelopes
// produced by the backstop include the fault message and its source
// location instead of the fixed generic message.
func WithDebug(debug bool) Option {
	return func(rt *Router) { rt.debug = debug }
}

// WithErrorMapper installs the fold from handler errors to envelopes.
func WithErrorMapper(m ErrorMapper) Option {
	return func(rt *Router) { rt.mapError = m }
}

// WithLogger sets the fallback logger used when a request context does
// not carry one.
func WithLogger(l *logger.Logger) Option {
	return func(rt *Router) { rt.logger = l }
}

// NewRouter constructs an empty Router. Register middleware and routes
// before serving; the route table must not be modified afterwards.
func NewRouter(opts ...Option) *Router {
	rt := &Router{
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Use appends a middleware to the pipeline. Middleware run in
// registration order before route matching.
func (rt *Router) Use(m Middleware) {
	rt.middlewares = append(rt.middlewares, m)
}

// Handle registers a route. The path template is compiled immediately;
// an invalid template panics, which surfaces broken route tables at
// boot instead of during dispatch.
func (rt *Router) Handle(method, pattern string, handler HandlerFunc) {
	route, err := newRoute(method, pattern, handler)
	if err != nil {
		panic(fmt.Sprintf("router: %v", err))
	}
	rt.routes = append(rt.routes, route)
}

// Get registers a GET route.
func (rt *Router) Get(pattern string, handler HandlerFunc) {
	rt.Handle(http.MethodGet, pattern, handler)
}

// Post registers a POST route.
func (rt *Router) Post(pattern string, handler HandlerFunc) {
	rt.Handle(http.MethodPost, pattern, handler)
}

// Put registers a PUT route.
func (rt *Router) Put(pattern string, handler HandlerFunc) {
	rt.Handle(http.MethodPut, pattern, handler)
}

// Delete registers a DELETE route.
func (rt *Router) Delete(pattern string, handler HandlerFunc) {
	rt.Handle(http.MethodDelete, pattern, handler)
}

// Routes returns the registered routes in registration order.
func (rt *Router) Routes() []*Route {
	return rt.routes
}

// ServeHTTP implements http.Handler. It drives the full pipeline:
// middleware, path normalization, route matching, handler invocation,
// error folding, envelope emission, and post-response hooks.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := newContext(w, r)

	resp := rt.dispatch(c)
	if resp != nil {
		rt.writeResponse(c, resp)
	}

	rt.runHooks(c, resp)
}

// dispatch runs the pipeline up to (but not including) envelope
// emission. A nil return means a middleware aborted and owns the
// response.
func (rt *Router) dispatch(c *Context) (resp *models.Response) {
	// Backstop: any panic escaping a middleware or handler becomes
	// exactly one server-error envelope.
	defer func() {
		if rec := recover(); rec != nil {
			resp = rt.normalizeFault(c, rec)
		}
	}()

	for _, m := range rt.middlewares {
		if !m(c) {
			return nil
		}
	}

	path := rt.normalizePath(c.Request.URL.Path)

	for _, route := range rt.routes {
		if route.method != c.Request.Method {
			continue
		}

		params, ok := route.match(path)
		if !ok {
			continue
		}

		c.Params = params

		result, err := route.handler(c)
		if err != nil {
			return rt.foldError(c, err)
		}
		if result == nil {
			rt.requestLogger(c).Error().
				Str("pattern", route.pattern).
				Msg("handler returned neither envelope nor error")
			return models.ServerError(serverErrorMessage)
		}
		return result
	}

	return models.NotFound(notFoundMessage)
}

// normalizePath strips the configured API prefix; an empty remainder
// defaults to the root path. No trailing-slash or case normalization is
// applied: matching is exact by policy.
func (rt *Router) normalizePath(path string) string {
	if rt.apiPrefix != "" {
		path = strings.TrimPrefix(path, rt.apiPrefix)
	}
	if path == "" {
		path = "/"
	}
	return path
}

// foldError converts a handler error into an envelope via the installed
// mapper, falling back to the server-error backstop for unmapped errors.
func (rt *Router) foldError(c *Context, err error) *models.Response {
	if rt.mapError != nil {
		if resp := rt.mapError(c, err); resp != nil {
			return resp
		}
	}

	rt.requestLogger(c).Err(err).Msg("unmapped handler error")

	if rt.debug {
		return models.ServerError(err.Error())
	}
	return models.ServerError(serverErrorMessage)
}

// normalizeFault is the single place where an escaped panic turns into a
// user-facing response. The fault text and source location leak into the
// envelope only in debug mode.
func (rt *Router) normalizeFault(c *Context, rec any) *models.Response {
	faultSite := panicSite()

	rt.requestLogger(c).Error().
		Str("uri", c.Request.RequestURI).
		Str("method", c.Request.Method).
		Str("site", faultSite).
		Any("fault", rec).
		Msg("panic during dispatch")

	if rt.debug {
		return models.ServerError(fmt.Sprintf("%v in %s", rec, faultSite))
	}
	return models.ServerError(serverErrorMessage)
}

// panicSite walks the stack past the runtime's panic machinery and this
// package, returning the first application frame as "file:line".
func panicSite() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(4, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") &&
			!strings.Contains(frame.File, "internal/router") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// writeResponse emits the envelope: status code, JSON body, UTF-8
// content type. This is the single emission point of the dispatcher.
func (rt *Router) writeResponse(c *Context, resp *models.Response) {
	body, err := json.Marshal(resp)
	if err != nil {
		rt.requestLogger(c).Err(err).Msg("marshaling response envelope")
		http.Error(c.Writer, serverErrorMessage, http.StatusInternalServerError)
		return
	}

	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.WriteHeader(resp.StatusCode)

	if _, err := c.Writer.Write(body); err != nil {
		rt.requestLogger(c).Err(err).Msg("writing response envelope")
	}
}

// runHooks executes post-response hooks in registration order. Each hook
// runs under its own recover guard: a broken hook is logged and
// discarded, never escalated.
func (rt *Router) runHooks(c *Context, resp *models.Response) {
	duration := c.Duration()

	for _, hook := range c.hooks {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					rt.requestLogger(c).Error().Any("fault", rec).Msg("post-response hook panicked")
				}
			}()
			hook(c, resp, duration)
		}()
	}
}

// requestLogger prefers the request-scoped logger attached by the
// trace-ID middleware; before that middleware runs (or in bare tests)
// zerolog yields a disabled logger, so fall back to the router's own.
func (rt *Router) requestLogger(c *Context) *logger.Logger {
	l := logger.FromRequest(c.Request)
	if l.GetLevel() == zerolog.Disabled {
		return rt.logger
	}
	return l
}
