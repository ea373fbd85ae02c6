package store

import (
	"context"
	"fmt"

	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/models"
)

// usageLogMinRetentionDays is the floor applied to the retention window
// for usage_logs: cost records are kept at least this long regardless of
// the configured general retention.
const usageLogMinRetentionDays = 90

// logRepository is the PostgreSQL-backed implementation of
// [LogRepository]. It writes append-only audit rows into the api_logs,
// send_history and usage_logs tables and prunes the two log tables on a
// retention schedule.
type logRepository struct {
	*DB
	logger *logger.Logger
}

// NewLogRepository constructs a [LogRepository] backed by the provided
// database connection and logger.
func NewLogRepository(db *DB, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertAPILog appends one api_logs row. Duration is persisted in
// milliseconds.
func (r *logRepository) InsertAPILog(ctx context.Context, record models.APILogRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.Execute(ctx, insertAPILog,
		record.Endpoint,
		record.Method,
		record.RequestData,
		record.ResponseData,
		record.Status,
		record.Duration.Milliseconds(),
		record.UserAgent,
		record.ClientIP,
		record.ErrorMessage,
	)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.InsertAPILog").
			Str("endpoint", record.Endpoint).
			Msg("failed to insert api log")
		return err
	}

	return nil
}

// InsertSendHistory appends one send_history row and returns the
// server-assigned ID.
func (r *logRepository) InsertSendHistory(ctx context.Context, record models.SendHistoryRecord) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := r.Insert(ctx, insertSendHistory,
		record.CompanyID,
		record.MessageSubject,
		record.MessageContent,
		record.SenderName,
		record.SenderEmail,
		record.SenderCompany,
		record.SenderPhone,
		record.ResponseStatus,
		record.ResponseMessage,
		record.HTTPStatusCode,
	)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.InsertSendHistory").
			Int64("company_id", record.CompanyID).
			Msg("failed to insert send history")
		return 0, err
	}

	return id, nil
}

// InsertUsageLog appends one usage_logs row.
func (r *logRepository) InsertUsageLog(ctx context.Context, record models.UsageLogRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.Execute(ctx, insertUsageLog,
		record.CompanyID,
		record.TemplateID,
		record.PromptText,
		record.ResponseText,
		record.TokensUsed,
		record.ModelVersion,
		record.CostUSD,
		record.ResponseTime,
		record.Status,
		record.ErrorMessage,
	)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.InsertUsageLog").
			Str("model_version", record.ModelVersion).
			Msg("failed to insert usage log")
		return err
	}

	return nil
}

// CleanupLogs deletes api_logs rows older than retentionDays and
// usage_logs rows older than max(retentionDays, 90) days. Returns the
// total number of rows removed.
func (r *logRepository) CleanupLogs(ctx context.Context, retentionDays int) (int64, error) {
	log := logger.FromContext(ctx)

	apiDeleted, err := r.Execute(ctx, deleteOldAPILogs, retentionDays)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.CleanupLogs").
			Int("retention_days", retentionDays).
			Msg("failed to prune api logs")
		return 0, fmt.Errorf("pruning api logs: %w", err)
	}

	usageRetention := retentionDays
	if usageRetention < usageLogMinRetentionDays {
		usageRetention = usageLogMinRetentionDays
	}

	usageDeleted, err := r.Execute(ctx, deleteOldUsageLogs, usageRetention)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.CleanupLogs").
			Int("retention_days", usageRetention).
			Msg("failed to prune usage logs")
		return apiDeleted, fmt.Errorf("pruning usage logs: %w", err)
	}

	log.Info().
		Str("func", "logRepository.CleanupLogs").
		Int64("api_logs_deleted", apiDeleted).
		Int64("usage_logs_deleted", usageDeleted).
		Msg("log cleanup finished")

	return apiDeleted + usageDeleted, nil
}
