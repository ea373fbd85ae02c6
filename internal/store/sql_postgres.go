package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fccrm/crm-admin/internal/config"
	"github.com/fccrm/crm-admin/internal/logger"
)

// DB wraps the shared *sql.DB connection pool together with the generic
// data-access primitives the repositories are built on. There is exactly
// one DB per process, created in main and passed explicitly to every
// repository constructor.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection pool via the pgx
// stdlib driver, verifies it with a ping and returns the wrapped handle.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DataSourceName())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// rowScanner is the scanning surface shared by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// FetchOne executes a query expected to yield at most one row and scans
// it via scan. [sql.ErrNoRows] passes through unchanged so callers can
// map it to their own not-found sentinel; every other failure goes
// through the error classifier.
func (db *DB) FetchOne(ctx context.Context, scan func(row rowScanner) error, query string, args ...any) error {
	if err := scan(db.QueryRowContext(ctx, query, args...)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return classifyError(err)
	}
	return nil
}

// FetchAll executes a query and invokes scan once per result row, in
// statement order. A query with no matches is not an error: scan is
// simply never called.
func (db *DB) FetchAll(ctx context.Context, scan func(row rowScanner) error, query string, args ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return classifyError(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// Insert executes an INSERT ... RETURNING id statement and returns the
// server-assigned primary key.
func (db *DB) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, classifyError(err)
	}
	return id, nil
}

// Execute runs a DML statement and returns the number of affected rows.
func (db *DB) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classifyError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected, nil
}

// IsConnected reports whether the database currently answers a ping.
// Used by the health endpoint; never returns an error, only a verdict.
func (db *DB) IsConnected(ctx context.Context) bool {
	return db.PingContext(ctx) == nil
}

// WithinTransaction runs fn inside a single database transaction. The
// transaction is rolled back automatically (via defer) when fn returns
// an error or panics; the commit is attempted only after fn succeeds.
func (db *DB) WithinTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*DB.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// postgresError extracts the PostgreSQL error code from a driver error,
// or returns the empty string for non-driver errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
