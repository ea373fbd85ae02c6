package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fccrm/crm-admin/models"
)

// ErrInvalidJSON is returned by [Context.DecodeJSON] when the request
// body is not well-formed JSON. Handlers translate it into a 400 envelope.
var ErrInvalidJSON = errors.New("invalid JSON format")

// Hook runs synchronously after the envelope has been written, with the
// finalized response and the request duration. Hooks are the replacement
// for fire-and-forget shutdown callbacks: the dispatcher invokes each one
// under its own recover guard, so a failing hook never affects the
// response or the remaining hooks.
type Hook func(c *Context, resp *models.Response, duration time.Duration)

// Context carries the per-request state handed to middleware and
// handlers: the underlying request/response pair, extracted route
// parameters, and normalized query parameters. It is created by the
// dispatcher and discarded after the response is sent.
type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request

	// Params maps placeholder names of the matched route to the literal
	// path substrings. Nil until the match phase succeeds.
	Params map[string]string

	query map[string]string
	hooks []Hook
	start time.Time
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		Writer:  w,
		Request: r,
		start:   time.Now(),
	}
}

// Query returns the value of a query parameter. Duplicate keys resolve
// to the last occurrence in the raw query string.
func (c *Context) Query(name string) string {
	if c.query == nil {
		c.query = make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			c.query[key] = values[len(values)-1]
		}
	}
	return c.query[name]
}

// QueryInt returns a query parameter parsed as int, or def when the
// parameter is absent or not a number.
func (c *Context) QueryInt(name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// Param returns the named route parameter extracted during matching.
func (c *Context) Param(name string) string {
	return c.Params[name]
}

// Header returns the value of a request header.
func (c *Context) Header(name string) string {
	return c.Request.Header.Get(name)
}

// DecodeJSON decodes the request body into dst. A malformed body yields
// [ErrInvalidJSON]; an empty body leaves dst untouched and returns nil.
func (c *Context) DecodeJSON(dst any) error {
	if c.Request.Body == nil {
		return nil
	}

	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidJSON
	}

	return nil
}

// AfterResponse registers a hook to run once the envelope has been
// written. Hooks run in registration order.
func (c *Context) AfterResponse(h Hook) {
	c.hooks = append(c.hooks, h)
}

// Duration returns the time elapsed since the request entered the
// dispatcher.
func (c *Context) Duration() time.Duration {
	return time.Since(c.start)
}
