package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyError maps a PostgreSQL driver error onto the package's
// sentinel errors so that callers can dispatch on [errors.Is] instead of
// inspecting raw driver codes.
//
// Mapping:
//   - unique_violation (23505) → [ErrDomainAlreadyExists]
//   - Class 08 connection exceptions and 57P03 → [ErrConnectionFailed]
//   - anything else → wrapped in [ErrExecutingQuery]
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for
// the full list of PostgreSQL error codes.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDomainAlreadyExists, err)

	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
