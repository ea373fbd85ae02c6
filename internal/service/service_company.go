package service

import (
	"context"
	"strings"

	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/store"
	"github.com/fccrm/crm-admin/models"
)

// Paging bounds for the company list endpoint.
const (
	minPerPage = 1
	maxPerPage = 100

	// DefaultPerPage is the page size used when the caller sends none.
	DefaultPerPage = 20
)

// defaultCategory groups companies created without an explicit category.
const defaultCategory = "main"

type companyService struct {
	companyRepository store.CompanyRepository

	logger *logger.Logger
}

// NewCompanyService constructs a [CompanyService] backed by the provided
// repository.
func NewCompanyService(companyRepository store.CompanyRepository, logger *logger.Logger) CompanyService {
	return &companyService{
		companyRepository: companyRepository,
		logger:            logger,
	}
}

// List returns one page of companies and the total match count. The
// paging inputs are clamped before hitting the store and the normalized
// values are returned so the caller can build accurate pagination
// metadata.
func (s *companyService) List(ctx context.Context, params ListParams) ([]models.Company, int64, ListParams, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < minPerPage {
		params.PerPage = minPerPage
	}
	if params.PerPage > maxPerPage {
		params.PerPage = maxPerPage
	}

	companies, total, err := s.companyRepository.List(ctx, params.Filter, params.Page, params.PerPage)
	if err != nil {
		return nil, 0, params, err
	}

	return companies, total, params, nil
}

// Get returns the company with the given ID.
func (s *companyService) Get(ctx context.Context, id int64) (models.Company, error) {
	if id < 1 {
		return models.Company{}, ErrInvalidCompanyID
	}
	return s.companyRepository.GetByID(ctx, id)
}

// Create validates the input, applies the create defaults and persists
// the new company.
//
// company_name and domain are required; a missing or blank value yields
// a [*ValidationError]. Absent optional fields default to category
// "main", status "active" and priority 0.
func (s *companyService) Create(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	fields := make(map[string]string)

	if input.CompanyName == nil || strings.TrimSpace(*input.CompanyName) == "" {
		fields["company_name"] = "company name is required"
	}
	if input.Domain == nil || strings.TrimSpace(*input.Domain) == "" {
		fields["domain"] = "domain is required"
	}
	if input.Status != nil && !validStatus(*input.Status) {
		fields["status"] = "status must be active or inactive"
	}

	if len(fields) > 0 {
		return models.Company{}, &ValidationError{Fields: fields}
	}

	company := models.Company{
		CompanyName: strings.TrimSpace(*input.CompanyName),
		Domain:      strings.TrimSpace(*input.Domain),
		Industry:    input.Industry,
		Category:    defaultCategory,
		Status:      models.CompanyStatusActive,
		Notes:       input.Notes,
	}
	if input.ContactFormURL != nil {
		company.ContactFormURL = input.ContactFormURL
	}
	if input.Category != nil && *input.Category != "" {
		company.Category = *input.Category
	}
	if input.Priority != nil {
		company.Priority = *input.Priority
	}
	if input.HasRecaptcha != nil {
		company.HasRecaptcha = *input.HasRecaptcha
	}
	if input.Status != nil {
		company.Status = *input.Status
	}

	return s.companyRepository.Create(ctx, company)
}

// Update validates and applies a partial update. An input with no fields
// at all is rejected with [ErrNoUpdateFields] before the store is
// touched; fields that are present must carry acceptable values.
func (s *companyService) Update(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error) {
	if id < 1 {
		return models.Company{}, ErrInvalidCompanyID
	}
	if input.IsEmpty() {
		return models.Company{}, ErrNoUpdateFields
	}

	fields := make(map[string]string)

	if input.CompanyName != nil && strings.TrimSpace(*input.CompanyName) == "" {
		fields["company_name"] = "company name must not be blank"
	}
	if input.Domain != nil && strings.TrimSpace(*input.Domain) == "" {
		fields["domain"] = "domain must not be blank"
	}
	if input.Status != nil && !validStatus(*input.Status) {
		fields["status"] = "status must be active or inactive"
	}

	if len(fields) > 0 {
		return models.Company{}, &ValidationError{Fields: fields}
	}

	return s.companyRepository.Update(ctx, id, input)
}

// Delete removes a company without send history and deactivates one
// that has any. Returns whether the company was deactivated rather than
// deleted.
func (s *companyService) Delete(ctx context.Context, id int64) (bool, error) {
	if id < 1 {
		return false, ErrInvalidCompanyID
	}
	return s.companyRepository.DeleteOrDeactivate(ctx, id)
}

func validStatus(status string) bool {
	return status == models.CompanyStatusActive || status == models.CompanyStatusInactive
}
