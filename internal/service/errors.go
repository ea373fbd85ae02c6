package service

import (
	"errors"
	"strings"
)

var (
	// ErrNoUpdateFields is returned when an update request carries no
	// updatable fields at all. The store is never touched in this case.
	ErrNoUpdateFields = errors.New("no fields provided for update")

	// ErrInvalidCompanyID is returned when a path parameter cannot be
	// parsed as a positive company ID.
	ErrInvalidCompanyID = errors.New("invalid company id")
)

// ValidationError reports per-field validation failures of a create or
// update request. The handler layer renders it as a 422 envelope with
// the Fields map attached.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
