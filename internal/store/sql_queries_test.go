package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fccrm/crm-admin/models"
)

func TestBuildListCompaniesQuery_NoFilter(t *testing.T) {
	query, args, err := buildListCompaniesQuery(models.CompanyFilter{}, 20, 0)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM companies")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Contains(t, query, "LIMIT 20")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListCompaniesQuery_AllFilters(t *testing.T) {
	filter := models.CompanyFilter{
		Category: "main",
		Status:   models.CompanyStatusActive,
		Search:   "acme",
	}

	query, args, err := buildListCompaniesQuery(filter, 10, 30)
	require.NoError(t, err)

	assert.Contains(t, query, "category = $1")
	assert.Contains(t, query, "status = $2")
	assert.Contains(t, query, "company_name ILIKE $3")
	assert.Contains(t, query, "domain ILIKE $4")
	assert.Contains(t, query, "OFFSET 30")
	assert.Equal(t, []any{"main", "active", "%acme%", "%acme%"}, args)
}

func TestBuildCountCompaniesQuery_MatchesFilterShape(t *testing.T) {
	filter := models.CompanyFilter{Status: models.CompanyStatusInactive}

	query, args, err := buildCountCompaniesQuery(filter)
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT COUNT")
	assert.Contains(t, query, "status = $1")
	assert.Equal(t, []any{"inactive"}, args)
}

func TestBuildUpdateCompanyQuery_SingleField(t *testing.T) {
	name := "New Name Inc."

	query, args, err := buildUpdateCompanyQuery(7, models.CompanyInput{CompanyName: &name})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE companies")
	assert.Contains(t, query, "company_name = $1")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "id = $2")
	assert.Equal(t, []any{"New Name Inc.", int64(7)}, args)
}

func TestBuildUpdateCompanyQuery_EmptyInputFails(t *testing.T) {
	_, _, err := buildUpdateCompanyQuery(7, models.CompanyInput{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}
