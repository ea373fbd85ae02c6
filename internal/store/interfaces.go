package store

import (
	"context"

	"github.com/fccrm/crm-admin/models"
)

// CompanyRepository is the persistence contract for the company
// aggregate. Implementations map driver-level failures onto the
// package's sentinel errors.
type CompanyRepository interface {
	List(ctx context.Context, filter models.CompanyFilter, page, perPage int) ([]models.Company, int64, error)
	GetByID(ctx context.Context, id int64) (models.Company, error)
	Create(ctx context.Context, company models.Company) (models.Company, error)
	Update(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error)
	DeleteOrDeactivate(ctx context.Context, id int64) (deactivated bool, err error)
}

// LogRepository is the persistence contract for the append-only audit
// tables. Writes are best-effort from the caller's point of view; the
// repository itself still reports failures.
type LogRepository interface {
	InsertAPILog(ctx context.Context, record models.APILogRecord) error
	InsertSendHistory(ctx context.Context, record models.SendHistoryRecord) (int64, error)
	InsertUsageLog(ctx context.Context, record models.UsageLogRecord) error
	CleanupLogs(ctx context.Context, retentionDays int) (int64, error)
}
