package service

import (
	"context"

	"github.com/fccrm/crm-admin/models"
)

// ListParams carries the paging inputs of the company list endpoint.
// Values are normalized by the service: page is clamped to at least 1
// and perPage to the [1, 100] range.
type ListParams struct {
	Filter  models.CompanyFilter
	Page    int
	PerPage int
}

// CompanyService implements the business rules of the company aggregate:
// input validation, create defaults, and the delete-or-deactivate policy
// delegated to the store.
type CompanyService interface {
	List(ctx context.Context, params ListParams) ([]models.Company, int64, ListParams, error)
	Get(ctx context.Context, id int64) (models.Company, error)
	Create(ctx context.Context, input models.CompanyInput) (models.Company, error)
	Update(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error)
	Delete(ctx context.Context, id int64) (deactivated bool, err error)
}

// AuditService writes the append-only audit records. Request and usage
// logging are best effort: failures are logged and swallowed so that an
// audit problem can never fail the request that triggered it.
type AuditService interface {
	LogAPIRequest(ctx context.Context, record models.APILogRecord)
	LogUsage(ctx context.Context, record models.UsageLogRecord)
	RecordSendAttempt(ctx context.Context, record models.SendHistoryRecord) (int64, error)
	CleanupLogs(ctx context.Context) (int64, error)
}

// HealthService reports whether the application and its database are
// able to serve traffic.
type HealthService interface {
	Check(ctx context.Context) models.Health
}

// ConnectionChecker is the slice of the database handle the health
// service needs.
type ConnectionChecker interface {
	IsConnected(ctx context.Context) bool
}
