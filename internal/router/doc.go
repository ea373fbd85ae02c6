// Package router implements the request-dispatch core of the admin API:
// a route table of path templates compiled to matchers at registration
// time, an ordered middleware pipeline with abort semantics, and a
// dispatcher that folds handler outcomes, escaped panics, and unmatched
// requests into exactly one response envelope per request.
//
// The table is scanned linearly in registration order and the first
// route whose method and pattern both match wins; overlapping templates
// are resolved by order, not by specificity.
package router
