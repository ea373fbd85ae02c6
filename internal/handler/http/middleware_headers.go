package http

import (
	"net/http"
	"strings"

	"github.com/fccrm/crm-admin/internal/router"
)

// withHeaders applies the security and CORS headers to every response
// and short-circuits CORS preflight requests with 204 before dispatch.
func (h *Handler) withHeaders(c *router.Context) bool {
	header := c.Writer.Header()

	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("X-Frame-Options", "DENY")
	header.Set("X-XSS-Protection", "1; mode=block")

	if origin := h.allowedOrigin(c.Header("Origin")); origin != "" {
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Methods", h.cfg.CORS.AllowedMethods)
		header.Set("Access-Control-Allow-Headers", h.cfg.CORS.AllowedHeaders)
	}

	if c.Request.Method == http.MethodOptions {
		c.Writer.WriteHeader(http.StatusNoContent)
		return false
	}

	return true
}

// allowedOrigin resolves the Access-Control-Allow-Origin value for a
// request origin: "*" passes everything through, otherwise the origin
// must appear in the configured comma-separated allow-list.
func (h *Handler) allowedOrigin(origin string) string {
	allowed := h.cfg.CORS.AllowedOrigins
	if allowed == "" {
		return ""
	}
	if allowed == "*" {
		return "*"
	}
	if origin == "" {
		return ""
	}

	for _, candidate := range strings.Split(allowed, ",") {
		if strings.TrimSpace(candidate) == origin {
			return origin
		}
	}

	return ""
}
