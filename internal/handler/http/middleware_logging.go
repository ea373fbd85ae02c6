package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/fccrm/crm-admin/internal/router"
	"github.com/fccrm/crm-admin/models"
)

// withRequestLogging registers a post-response hook that writes one
// audit record per handled request. The hook runs synchronously after
// the envelope is written, so a slow or failing audit write can delay
// but never alter the response.
func (h *Handler) withRequestLogging(c *router.Context) bool {
	if c.Request.Method == http.MethodOptions {
		return true
	}

	c.AfterResponse(func(c *router.Context, resp *models.Response, duration time.Duration) {
		record := models.APILogRecord{
			Endpoint: c.Request.RequestURI,
			Method:   c.Request.Method,
			Duration: duration,
			ClientIP: clientIP(c.Request),
		}

		if ua := c.Header("User-Agent"); ua != "" {
			record.UserAgent = &ua
		}
		if resp != nil {
			record.Status = resp.StatusCode
			if !resp.Success {
				msg := resp.Message
				record.ErrorMessage = &msg
			}
		}

		h.services.AuditService.LogAPIRequest(c.Request.Context(), record)
	})

	return true
}

// clientIP resolves the requester's address: the first entry of the
// X-Forwarded-For chain when present, otherwise the direct peer address
// without its port.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		addr = addr[:idx]
	}
	return addr
}
