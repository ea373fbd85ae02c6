package http

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fccrm/crm-admin/internal/router"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace ID (reusing the caller's
// when present), attaches a trace-scoped child logger to the request
// context and echoes the ID back in the response headers.
func (h *Handler) withTraceID(c *router.Context) bool {
	traceID := c.Header(traceIDHeader)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("trace_id", traceID)
	})
	c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

	c.Writer.Header().Set(traceIDHeader, traceID)
	return true
}
