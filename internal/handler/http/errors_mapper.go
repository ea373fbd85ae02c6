package http

import (
	"errors"
	"net/http"

	"github.com/fccrm/crm-admin/internal/router"
	"github.com/fccrm/crm-admin/internal/service"
	"github.com/fccrm/crm-admin/internal/store"
	"github.com/fccrm/crm-admin/models"
)

var errorStatusMap = map[error]int{
	router.ErrInvalidJSON: http.StatusBadRequest,

	service.ErrNoUpdateFields:   http.StatusBadRequest,
	service.ErrInvalidCompanyID: http.StatusBadRequest,

	store.ErrCompanyNotFound:     http.StatusNotFound,
	store.ErrDomainAlreadyExists: http.StatusConflict,
	store.ErrConnectionFailed:    http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// mapError is the dispatcher's error fold: it translates handler errors
// into envelopes. Validation failures keep their field map; sentinel
// errors map to fixed statuses; anything unrecognised returns nil and
// falls through to the dispatcher's server-error backstop.
func (h *Handler) mapError(c *router.Context, err error) *models.Response {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return models.ValidationError(vErr.Fields, "validation failed")
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return models.Error(errorMessage(target, status), status, nil)
		}
	}

	return nil
}

// errorMessage chooses the user-facing text for a mapped error. Server
// faults never leak internals; client errors repeat the sentinel text.
func errorMessage(target error, status int) string {
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		return "internal server error occurred"
	}
	if status == http.StatusServiceUnavailable {
		return "database connection failed"
	}
	return target.Error()
}
