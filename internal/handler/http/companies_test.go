package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fccrm/crm-admin/internal/service"
	"github.com/fccrm/crm-admin/internal/store"
	"github.com/fccrm/crm-admin/models"
)

func TestListCompanies_PassesFiltersAndPaging(t *testing.T) {
	var gotParams service.ListParams
	company := &mockCompanyService{
		listFn: func(_ context.Context, params service.ListParams) ([]models.Company, int64, service.ListParams, error) {
			gotParams = params
			return []models.Company{{ID: 1, Domain: "acme.example.com"}}, 1, params, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/companies?category=main&status=active&search=acme&page=2&per_page=10", nil))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "main", gotParams.Filter.Category)
	assert.Equal(t, "active", gotParams.Filter.Status)
	assert.Equal(t, "acme", gotParams.Filter.Search)
	assert.Equal(t, 2, gotParams.Page)
	assert.Equal(t, 10, gotParams.PerPage)
}

func TestListCompanies_EnvelopeCarriesPaginationMeta(t *testing.T) {
	company := &mockCompanyService{
		listFn: func(_ context.Context, params service.ListParams) ([]models.Company, int64, service.ListParams, error) {
			return []models.Company{{ID: 41}}, 45, params, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/companies?page=3&per_page=20", nil))

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Meta models.PaginationMeta `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Data.Meta.Total)
	assert.Equal(t, 3, resp.Data.Meta.CurrentPage)
	assert.Equal(t, int64(3), resp.Data.Meta.LastPage)
	assert.Equal(t, int64(41), resp.Data.Meta.From)
	assert.Equal(t, int64(45), resp.Data.Meta.To)
}

func TestGetCompany_Success(t *testing.T) {
	company := &mockCompanyService{
		getFn: func(_ context.Context, id int64) (models.Company, error) {
			assert.Equal(t, int64(42), id)
			return models.Company{ID: 42, Domain: "acme.example.com"}, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/companies/42", nil))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 200, rec.Code)
	assert.True(t, resp.Success)
}

func TestGetCompany_NotFound(t *testing.T) {
	company := &mockCompanyService{
		getFn: func(_ context.Context, _ int64) (models.Company, error) {
			return models.Company{}, store.ErrCompanyNotFound
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/companies/99", nil))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 404, rec.Code)
	assert.False(t, resp.Success)
}

func TestGetCompany_NonNumericID(t *testing.T) {
	rt := newTestHandler(nil, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/companies/abc", nil))

	assert.Equal(t, 400, rec.Code)
}

func TestCreateCompany_Success(t *testing.T) {
	company := &mockCompanyService{
		createFn: func(_ context.Context, input models.CompanyInput) (models.Company, error) {
			require.NotNil(t, input.CompanyName)
			return models.Company{ID: 5, CompanyName: *input.CompanyName}, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	body := strings.NewReader(`{"company_name":"Acme Corp","domain":"acme.example.com"}`)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("POST", "/api/companies", body))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 201, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "company created successfully", resp.Message)
}

func TestCreateCompany_MalformedJSON(t *testing.T) {
	rt := newTestHandler(nil, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("POST", "/api/companies", strings.NewReader(`{"company_name":`)))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 400, rec.Code)
	assert.False(t, resp.Success)
}

func TestCreateCompany_ValidationFailure(t *testing.T) {
	company := &mockCompanyService{
		createFn: func(_ context.Context, _ models.CompanyInput) (models.Company, error) {
			return models.Company{}, &service.ValidationError{Fields: map[string]string{
				"domain": "domain is required",
			}}
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("POST", "/api/companies", strings.NewReader(`{"company_name":"Acme"}`)))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 422, rec.Code)
	assert.Equal(t, "domain is required", resp.Errors["domain"])
}

func TestCreateCompany_DuplicateDomain(t *testing.T) {
	company := &mockCompanyService{
		createFn: func(_ context.Context, _ models.CompanyInput) (models.Company, error) {
			return models.Company{}, store.ErrDomainAlreadyExists
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	body := strings.NewReader(`{"company_name":"Acme","domain":"acme.example.com"}`)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("POST", "/api/companies", body))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 409, rec.Code)
	assert.False(t, resp.Success)
}

func TestUpdateCompany_EmptyBodyIs400(t *testing.T) {
	company := &mockCompanyService{
		updateFn: func(_ context.Context, _ int64, _ models.CompanyInput) (models.Company, error) {
			return models.Company{}, service.ErrNoUpdateFields
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/companies/1", strings.NewReader(`{}`)))

	assert.Equal(t, 400, rec.Code)
}

func TestUpdateCompany_Success(t *testing.T) {
	company := &mockCompanyService{
		updateFn: func(_ context.Context, id int64, input models.CompanyInput) (models.Company, error) {
			assert.Equal(t, int64(3), id)
			require.NotNil(t, input.Notes)
			return models.Company{ID: 3}, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/companies/3", strings.NewReader(`{"notes":"call back"}`)))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "company updated successfully", resp.Message)
}

func TestDeleteCompany_HardDelete(t *testing.T) {
	company := &mockCompanyService{
		deleteFn: func(_ context.Context, _ int64) (bool, error) {
			return false, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/companies/1", nil))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "company deleted successfully", resp.Message)
}

func TestDeleteCompany_DeactivatedWithHistory(t *testing.T) {
	company := &mockCompanyService{
		deleteFn: func(_ context.Context, _ int64) (bool, error) {
			return true, nil
		},
	}
	rt := newTestHandler(company, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/companies/1", nil))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "company has send history and was deactivated", resp.Message)
}

func TestCompanies_UnknownRouteIs404(t *testing.T) {
	rt := newTestHandler(nil, nil, nil).Init()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/unknown", nil))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "API endpoint not found", resp.Message)
}
