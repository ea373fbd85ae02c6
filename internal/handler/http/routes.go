package http

import (
	"github.com/fccrm/crm-admin/internal/router"
)

// Init builds the route table. Middleware run in registration order:
// trace IDs first so every later stage logs with one, then the header
// stack, then request audit logging.
func (h *Handler) Init() *router.Router {
	rt := router.NewRouter(
		router.WithAPIPrefix(h.cfg.Server.APIPrefix),
		router.WithDebug(h.cfg.App.Debug),
		router.WithErrorMapper(h.mapError),
		router.WithLogger(h.logger),
	)

	rt.Use(h.withTraceID)
	rt.Use(h.withHeaders)
	rt.Use(h.withRequestLogging)

	rt.Get("/companies", h.listCompanies)
	rt.Post("/companies", h.createCompany)
	rt.Get("/companies/{id}", h.getCompany)
	rt.Put("/companies/{id}", h.updateCompany)
	rt.Delete("/companies/{id}", h.deleteCompany)

	rt.Get("/health", h.health)

	return rt
}
