package service

import (
	"context"
	"time"

	"github.com/fccrm/crm-admin/internal/config"
	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/models"
)

type healthService struct {
	db  ConnectionChecker
	cfg config.App

	logger *logger.Logger
}

// NewHealthService constructs a [HealthService] that probes the given
// database handle.
func NewHealthService(db ConnectionChecker, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Check pings the database and reports the aggregate health verdict.
// Status is "ok" only when the database answers.
func (s *healthService) Check(ctx context.Context) models.Health {
	connected := s.db.IsConnected(ctx)

	status := models.HealthStatusOK
	if !connected {
		status = models.HealthStatusUnavailable
		s.logger.Warn().Str("func", "healthService.Check").Msg("database ping failed")
	}

	return models.Health{
		Status:    status,
		Database:  connected,
		Timestamp: time.Now().UTC(),
		Version:   s.cfg.Version,
	}
}
