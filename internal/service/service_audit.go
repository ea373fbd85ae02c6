package service

import (
	"context"

	"github.com/fccrm/crm-admin/internal/config"
	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/store"
	"github.com/fccrm/crm-admin/models"
)

type auditService struct {
	logRepository store.LogRepository
	cfg           config.Logs

	logger *logger.Logger
}

// NewAuditService constructs an [AuditService] writing through the
// provided log repository, honouring the logging switches and retention
// window from cfg.
func NewAuditService(logRepository store.LogRepository, cfg config.Logs, logger *logger.Logger) AuditService {
	return &auditService{
		logRepository: logRepository,
		cfg:           cfg,
		logger:        logger,
	}
}

// LogAPIRequest writes one api_logs row for a handled request. A no-op
// when request logging is disabled. Failures are logged and swallowed;
// the request that triggered the record has already been answered.
func (s *auditService) LogAPIRequest(ctx context.Context, record models.APILogRecord) {
	if !s.cfg.APIRequests {
		return
	}

	if err := s.logRepository.InsertAPILog(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditService.LogAPIRequest").
			Str("endpoint", record.Endpoint).
			Msg("failed to record api request")
	}
}

// LogUsage writes one usage_logs row. A no-op when usage logging is
// disabled. Failures are logged and swallowed.
func (s *auditService) LogUsage(ctx context.Context, record models.UsageLogRecord) {
	if !s.cfg.UsageRecords {
		return
	}

	if err := s.logRepository.InsertUsageLog(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditService.LogUsage").
			Str("model_version", record.ModelVersion).
			Msg("failed to record usage")
	}
}

// RecordSendAttempt persists a contact-form submission attempt. Unlike
// the log writers this is a domain event the caller depends on (it
// decides the delete-or-deactivate outcome later), so failures are
// returned, not swallowed.
func (s *auditService) RecordSendAttempt(ctx context.Context, record models.SendHistoryRecord) (int64, error) {
	return s.logRepository.InsertSendHistory(ctx, record)
}

// CleanupLogs prunes expired audit rows using the configured retention
// window and returns the number of rows removed.
func (s *auditService) CleanupLogs(ctx context.Context) (int64, error) {
	return s.logRepository.CleanupLogs(ctx, s.cfg.RetentionDays)
}
