package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/fccrm/crm-admin/models"
)

const (
	getCompanyByID = `SELECT id, company_name, domain, industry, contact_form_url, category, priority, has_recaptcha, notes, status, created_at, updated_at
	FROM companies
	WHERE id = $1;`

	createCompany = `INSERT INTO companies (company_name, domain, industry, contact_form_url, category, priority, has_recaptcha, notes, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id;`

	lockCompanyRow = `SELECT id FROM companies
	WHERE id = $1
	FOR UPDATE;`

	countCompanySendHistory = `SELECT COUNT(*) FROM send_history
	WHERE company_id = $1;`

	deactivateCompany = `UPDATE companies
	SET status = 'inactive', updated_at = NOW()
	WHERE id = $1;`

	deleteCompany = `DELETE FROM companies
	WHERE id = $1;`

	insertAPILog = `INSERT INTO api_logs (endpoint, http_method, request_data, response_data, response_status, execution_time_ms, user_agent, ip_address, error_message)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	insertSendHistory = `INSERT INTO send_history (company_id, message_subject, message_content, sender_name, sender_email, sender_company, sender_phone, response_status, response_message, http_status_code)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id;`

	insertUsageLog = `INSERT INTO usage_logs (company_id, template_id, prompt_text, response_text, tokens_used, model_version, cost_usd, response_time, status, error_message)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	deleteOldAPILogs = `DELETE FROM api_logs
	WHERE created_at < NOW() - ($1 * INTERVAL '1 day');`

	deleteOldUsageLogs = `DELETE FROM usage_logs
	WHERE created_at < NOW() - ($1 * INTERVAL '1 day');`
)

// companyColumns is the canonical column order shared by the list query
// and the row scanner.
var companyColumns = []string{
	"id", "company_name", "domain", "industry", "contact_form_url",
	"category", "priority", "has_recaptcha", "notes", "status",
	"created_at", "updated_at",
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// applyCompanyFilter appends the list-endpoint predicates to a SELECT
// builder. Empty filter fields add no predicate; the search term matches
// company_name and domain case-insensitively as a substring.
func applyCompanyFilter(builder sq.SelectBuilder, filter models.CompanyFilter) sq.SelectBuilder {
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"company_name": pattern},
			sq.ILike{"domain": pattern},
		})
	}
	return builder
}

// buildListCompaniesQuery produces the filtered, newest-first page query.
func buildListCompaniesQuery(filter models.CompanyFilter, limit, offset uint64) (string, []any, error) {
	builder := psql.
		Select(companyColumns...).
		From(models.Company{}.TableName()).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset)

	query, args, err := applyCompanyFilter(builder, filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountCompaniesQuery produces the total count for the same filter,
// used to populate the pagination metadata.
func buildCountCompaniesQuery(filter models.CompanyFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From(models.Company{}.TableName())

	query, args, err := applyCompanyFilter(builder, filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateCompanyQuery produces a partial UPDATE touching only the
// fields present in the input. Returns [ErrBuildingSQLQuery] when the
// input carries no updatable fields; callers are expected to reject the
// request before reaching this point.
func buildUpdateCompanyQuery(id int64, input models.CompanyInput) (string, []any, error) {
	set := make(map[string]any)

	if input.CompanyName != nil {
		set["company_name"] = *input.CompanyName
	}
	if input.Domain != nil {
		set["domain"] = *input.Domain
	}
	if input.Industry != nil {
		set["industry"] = *input.Industry
	}
	if input.ContactFormURL != nil {
		set["contact_form_url"] = *input.ContactFormURL
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Priority != nil {
		set["priority"] = *input.Priority
	}
	if input.HasRecaptcha != nil {
		set["has_recaptcha"] = *input.HasRecaptcha
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := psql.
		Update(models.Company{}.TableName()).
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
