package http

import (
	"github.com/fccrm/crm-admin/internal/config"
	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/service"
)

// Handler owns the HTTP endpoint methods and the middleware wired in
// front of them.
type Handler struct {
	services *service.Services
	cfg      *config.Config

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler layer.
func NewHandler(services *service.Services, cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
