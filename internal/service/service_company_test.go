package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/models"
)

// ─────────────────────────────────────────────
// Mock: store.CompanyRepository
// ─────────────────────────────────────────────

type mockCompanyRepository struct {
	listFn    func(ctx context.Context, filter models.CompanyFilter, page, perPage int) ([]models.Company, int64, error)
	getByIDFn func(ctx context.Context, id int64) (models.Company, error)
	createFn  func(ctx context.Context, company models.Company) (models.Company, error)
	updateFn  func(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCompanyRepository) List(ctx context.Context, filter models.CompanyFilter, page, perPage int) ([]models.Company, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter, page, perPage)
	}
	return nil, 0, nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id int64) (models.Company, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Company{}, nil
}

func (m *mockCompanyRepository) Create(ctx context.Context, company models.Company) (models.Company, error) {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	return company, nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return models.Company{}, nil
}

func (m *mockCompanyRepository) DeleteOrDeactivate(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func newTestCompanyService(repo *mockCompanyRepository) CompanyService {
	return NewCompanyService(repo, logger.Nop())
}

func strPtr(s string) *string { return &s }

var errRepository = errors.New("repository error")

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestCompanyService_List_ClampsPaging(t *testing.T) {
	var gotPage, gotPerPage int
	repo := &mockCompanyRepository{
		listFn: func(_ context.Context, _ models.CompanyFilter, page, perPage int) ([]models.Company, int64, error) {
			gotPage, gotPerPage = page, perPage
			return nil, 0, nil
		},
	}
	svc := newTestCompanyService(repo)

	_, _, params, err := svc.List(context.Background(), ListParams{Page: 0, PerPage: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 100, gotPerPage)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestCompanyService_List_NegativePerPageClampsToOne(t *testing.T) {
	repo := &mockCompanyRepository{}
	svc := newTestCompanyService(repo)

	_, _, params, err := svc.List(context.Background(), ListParams{Page: 2, PerPage: -5})

	require.NoError(t, err)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 1, params.PerPage)
}

func TestCompanyService_List_PassesFilterThrough(t *testing.T) {
	filter := models.CompanyFilter{Category: "main", Search: "acme"}
	repo := &mockCompanyRepository{
		listFn: func(_ context.Context, got models.CompanyFilter, _, _ int) ([]models.Company, int64, error) {
			assert.Equal(t, filter, got)
			return []models.Company{{ID: 1}}, 1, nil
		},
	}
	svc := newTestCompanyService(repo)

	companies, total, _, err := svc.List(context.Background(), ListParams{Filter: filter, Page: 1, PerPage: 20})

	require.NoError(t, err)
	assert.Len(t, companies, 1)
	assert.Equal(t, int64(1), total)
}

func TestCompanyService_List_RepositoryError(t *testing.T) {
	repo := &mockCompanyRepository{
		listFn: func(_ context.Context, _ models.CompanyFilter, _, _ int) ([]models.Company, int64, error) {
			return nil, 0, errRepository
		},
	}
	svc := newTestCompanyService(repo)

	_, _, _, err := svc.List(context.Background(), ListParams{Page: 1, PerPage: 20})

	assert.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestCompanyService_Get_InvalidID(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{})

	_, err := svc.Get(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidCompanyID)
}

func TestCompanyService_Get_Delegates(t *testing.T) {
	repo := &mockCompanyRepository{
		getByIDFn: func(_ context.Context, id int64) (models.Company, error) {
			assert.Equal(t, int64(7), id)
			return models.Company{ID: 7}, nil
		},
	}
	svc := newTestCompanyService(repo)

	company, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), company.ID)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCompanyService_Create_RequiredFields(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{})

	_, err := svc.Create(context.Background(), models.CompanyInput{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "company_name")
	assert.Contains(t, vErr.Fields, "domain")
}

func TestCompanyService_Create_BlankNameIsRejected(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{})

	_, err := svc.Create(context.Background(), models.CompanyInput{
		CompanyName: strPtr("   "),
		Domain:      strPtr("acme.example.com"),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "company_name")
	assert.NotContains(t, vErr.Fields, "domain")
}

func TestCompanyService_Create_AppliesDefaults(t *testing.T) {
	var stored models.Company
	repo := &mockCompanyRepository{
		createFn: func(_ context.Context, company models.Company) (models.Company, error) {
			stored = company
			return company, nil
		},
	}
	svc := newTestCompanyService(repo)

	_, err := svc.Create(context.Background(), models.CompanyInput{
		CompanyName: strPtr("Acme Corp"),
		Domain:      strPtr("acme.example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "main", stored.Category)
	assert.Equal(t, models.CompanyStatusActive, stored.Status)
	assert.Equal(t, 0, stored.Priority)
	assert.False(t, stored.HasRecaptcha)
}

func TestCompanyService_Create_ExplicitValuesWin(t *testing.T) {
	var stored models.Company
	repo := &mockCompanyRepository{
		createFn: func(_ context.Context, company models.Company) (models.Company, error) {
			stored = company
			return company, nil
		},
	}
	svc := newTestCompanyService(repo)

	priority := 8
	hasRecaptcha := true
	_, err := svc.Create(context.Background(), models.CompanyInput{
		CompanyName:  strPtr("Acme Corp"),
		Domain:       strPtr("acme.example.com"),
		Category:     strPtr("trial"),
		Priority:     &priority,
		HasRecaptcha: &hasRecaptcha,
		Status:       strPtr(models.CompanyStatusInactive),
	})

	require.NoError(t, err)
	assert.Equal(t, "trial", stored.Category)
	assert.Equal(t, 8, stored.Priority)
	assert.True(t, stored.HasRecaptcha)
	assert.Equal(t, models.CompanyStatusInactive, stored.Status)
}

func TestCompanyService_Create_InvalidStatus(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{})

	_, err := svc.Create(context.Background(), models.CompanyInput{
		CompanyName: strPtr("Acme Corp"),
		Domain:      strPtr("acme.example.com"),
		Status:      strPtr("archived"),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "status")
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestCompanyService_Update_EmptyInputRejected(t *testing.T) {
	repoTouched := false
	repo := &mockCompanyRepository{
		updateFn: func(_ context.Context, _ int64, _ models.CompanyInput) (models.Company, error) {
			repoTouched = true
			return models.Company{}, nil
		},
	}
	svc := newTestCompanyService(repo)

	_, err := svc.Update(context.Background(), 1, models.CompanyInput{})

	assert.ErrorIs(t, err, ErrNoUpdateFields)
	assert.False(t, repoTouched, "store must not be touched on an empty update")
}

func TestCompanyService_Update_BlankDomainRejected(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{})

	_, err := svc.Update(context.Background(), 1, models.CompanyInput{Domain: strPtr("")})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "domain")
}

func TestCompanyService_Update_Delegates(t *testing.T) {
	repo := &mockCompanyRepository{
		updateFn: func(_ context.Context, id int64, input models.CompanyInput) (models.Company, error) {
			assert.Equal(t, int64(3), id)
			require.NotNil(t, input.Notes)
			return models.Company{ID: 3}, nil
		},
	}
	svc := newTestCompanyService(repo)

	updated, err := svc.Update(context.Background(), 3, models.CompanyInput{Notes: strPtr("call back monday")})

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestCompanyService_Delete_InvalidID(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{})

	_, err := svc.Delete(context.Background(), -1)

	assert.ErrorIs(t, err, ErrInvalidCompanyID)
}

func TestCompanyService_Delete_ReportsDeactivation(t *testing.T) {
	repo := &mockCompanyRepository{
		deleteFn: func(_ context.Context, id int64) (bool, error) {
			return true, nil
		},
	}
	svc := newTestCompanyService(repo)

	deactivated, err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, deactivated)
}
