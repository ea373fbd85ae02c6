package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"

	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/models"
)

// companyRepository is the PostgreSQL-backed implementation of
// [CompanyRepository]. It executes all company CRUD operations against
// the "companies" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (company_id, filter values, etc.).
type companyRepository struct {
	*DB
	logger *logger.Logger
}

// NewCompanyRepository constructs a [CompanyRepository] backed by the
// provided database connection and logger.
func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		DB:     db,
		logger: logger,
	}
}

// scanCompany reads one companies row in [companyColumns] order.
func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&c.Domain,
		&c.Industry,
		&c.ContactFormURL,
		&c.Category,
		&c.Priority,
		&c.HasRecaptcha,
		&c.Notes,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// List returns one page of companies matching the filter, newest first,
// together with the total number of matching rows for pagination.
//
// The caller is responsible for clamping page and perPage; this method
// trusts its arguments and computes the offset as (page-1)*perPage.
func (r *companyRepository) List(ctx context.Context, filter models.CompanyFilter, page, perPage int) ([]models.Company, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountCompaniesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "companyRepository.List").Msg("failed to build count query")
		return nil, 0, err
	}

	var total int64
	err = r.FetchOne(ctx, func(row rowScanner) error {
		return row.Scan(&total)
	}, countQuery, countArgs...)
	if err != nil {
		log.Err(err).Str("func", "companyRepository.List").Msg("failed to count companies")
		return nil, 0, err
	}

	offset := uint64(page-1) * uint64(perPage)
	listQuery, listArgs, err := buildListCompaniesQuery(filter, uint64(perPage), offset)
	if err != nil {
		log.Err(err).Str("func", "companyRepository.List").Msg("failed to build list query")
		return nil, 0, err
	}

	companies := make([]models.Company, 0, perPage)
	err = r.FetchAll(ctx, func(row rowScanner) error {
		company, scanErr := scanCompany(row)
		if scanErr != nil {
			return scanErr
		}
		companies = append(companies, company)
		return nil
	}, listQuery, listArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.List").
			Str("category", filter.Category).
			Str("status", filter.Status).
			Msg("failed to execute query for listing companies")
		return nil, 0, err
	}

	return companies, total, nil
}

// GetByID returns the company with the given ID, or [ErrCompanyNotFound]
// when no such row exists.
func (r *companyRepository) GetByID(ctx context.Context, id int64) (models.Company, error) {
	log := logger.FromContext(ctx)

	var company models.Company
	err := r.FetchOne(ctx, func(row rowScanner) error {
		var scanErr error
		company, scanErr = scanCompany(row)
		return scanErr
	}, getCompanyByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, ErrCompanyNotFound
		}
		log.Err(err).
			Str("func", "companyRepository.GetByID").
			Int64("company_id", id).
			Msg("failed to get company")
		return models.Company{}, err
	}

	return company, nil
}

// Create persists a new company and returns the stored record with the
// server-assigned ID and timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDomainAlreadyExists].
//   - Any other driver-level error → wrapped via the error classifier.
func (r *companyRepository) Create(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.DB.QueryRowContext(ctx, createCompany,
		company.CompanyName,
		company.Domain,
		company.Industry,
		company.ContactFormURL,
		company.Category,
		company.Priority,
		company.HasRecaptcha,
		company.Notes,
		company.Status,
	).Scan(&id)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.Create").
			Str("domain", company.Domain).
			Msg("failed to insert company")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Company{}, ErrDomainAlreadyExists
		default:
			return models.Company{}, classifyError(err)
		}
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial update touching only the fields present in
// the input and returns the refreshed record.
//
// Error handling:
//   - zero affected rows → [ErrCompanyNotFound].
//   - unique_violation on a domain change → [ErrDomainAlreadyExists].
func (r *companyRepository) Update(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCompanyQuery(id, input)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.Update").
			Int64("company_id", id).
			Msg("failed to build update query")
		return models.Company{}, err
	}

	affected, err := r.Execute(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.Update").
			Int64("company_id", id).
			Msg("failed to execute update query")
		return models.Company{}, err
	}

	if affected == 0 {
		return models.Company{}, ErrCompanyNotFound
	}

	return r.GetByID(ctx, id)
}

// DeleteOrDeactivate removes a company, unless it has accumulated send
// history, in which case the record is kept and its status flips to
// "inactive". The row lock, the history count and the final write all
// happen inside one transaction so a submission recorded concurrently
// cannot slip past the check.
//
// Returns deactivated=true when the company was kept, false when it was
// deleted, and [ErrCompanyNotFound] when the ID does not exist.
func (r *companyRepository) DeleteOrDeactivate(ctx context.Context, id int64) (deactivated bool, err error) {
	log := logger.FromContext(ctx)

	err = r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		var lockedID int64
		if err := tx.QueryRowContext(ctx, lockCompanyRow, id).Scan(&lockedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCompanyNotFound
			}
			log.Err(err).
				Str("func", "companyRepository.DeleteOrDeactivate").
				Int64("company_id", id).
				Msg("failed to lock company row")
			return classifyError(err)
		}

		var historyCount int64
		if err := tx.QueryRowContext(ctx, countCompanySendHistory, id).Scan(&historyCount); err != nil {
			log.Err(err).
				Str("func", "companyRepository.DeleteOrDeactivate").
				Int64("company_id", id).
				Msg("failed to count send history")
			return classifyError(err)
		}

		if historyCount > 0 {
			if _, err := tx.ExecContext(ctx, deactivateCompany, id); err != nil {
				log.Err(err).
					Str("func", "companyRepository.DeleteOrDeactivate").
					Int64("company_id", id).
					Msg("failed to deactivate company")
				return classifyError(err)
			}
			deactivated = true

			log.Info().
				Str("func", "companyRepository.DeleteOrDeactivate").
				Int64("company_id", id).
				Int64("history_count", historyCount).
				Msg("company has send history, deactivated instead of deleted")
			return nil
		}

		if _, err := tx.ExecContext(ctx, deleteCompany, id); err != nil {
			log.Err(err).
				Str("func", "companyRepository.DeleteOrDeactivate").
				Int64("company_id", id).
				Msg("failed to delete company")
			return classifyError(err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return deactivated, nil
}
