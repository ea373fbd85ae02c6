package service

import (
	"github.com/fccrm/crm-admin/internal/config"
	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/store"
)

// Services bundles the business-logic layer for injection into the
// handler layer and the background workers.
type Services struct {
	CompanyService CompanyService
	AuditService   AuditService
	HealthService  HealthService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(repositories *store.Repositories, db *store.DB, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		CompanyService: NewCompanyService(repositories.CompanyRepository, logger),
		AuditService:   NewAuditService(repositories.LogRepository, cfg.Logs, logger),
		HealthService:  NewHealthService(db, cfg.App, logger),
	}
}
