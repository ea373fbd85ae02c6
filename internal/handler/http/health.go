package http

import (
	"github.com/fccrm/crm-admin/internal/router"
	"github.com/fccrm/crm-admin/models"
)

// health answers GET /health: 200 with the probe payload while the
// database answers, 503 with the same payload once it stops.
func (h *Handler) health(c *router.Context) (*models.Response, error) {
	result := h.services.HealthService.Check(c.Request.Context())

	if !result.Database {
		resp := models.ServiceUnavailable("service is unhealthy")
		resp.Data = result
		return resp, nil
	}

	return models.Success(result, "service is healthy", 200), nil
}
