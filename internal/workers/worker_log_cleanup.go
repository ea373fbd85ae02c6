package workers

import (
	"context"
	"time"

	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/service"
)

// LogCleanupWorker prunes expired audit rows on a fixed interval. One
// cleanup pass runs immediately at startup so a long-stopped instance
// catches up without waiting a full interval.
type LogCleanupWorker struct {
	audit    service.AuditService
	interval time.Duration

	logger *logger.Logger
}

// NewLogCleanupWorker constructs the cleanup worker. A non-positive
// interval falls back to once a day.
func NewLogCleanupWorker(audit service.AuditService, interval time.Duration, logger *logger.Logger) *LogCleanupWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	return &LogCleanupWorker{
		audit:    audit,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, executing one cleanup pass per
// interval. A failing pass is logged and retried on the next tick.
func (w *LogCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().
		Dur("interval", w.interval).
		Msg("log cleanup worker started")

	w.cleanup(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("log cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *LogCleanupWorker) cleanup(ctx context.Context) {
	deleted, err := w.audit.CleanupLogs(ctx)
	if err != nil {
		w.logger.Err(err).Msg("log cleanup pass failed")
		return
	}

	w.logger.Info().Int64("rows_deleted", deleted).Msg("log cleanup pass finished")
}
