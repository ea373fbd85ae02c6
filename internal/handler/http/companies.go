package http

import (
	"strconv"

	"github.com/fccrm/crm-admin/internal/router"
	"github.com/fccrm/crm-admin/internal/service"
	"github.com/fccrm/crm-admin/models"
)

// listCompanies answers GET /companies: a filtered, paginated listing,
// newest first.
func (h *Handler) listCompanies(c *router.Context) (*models.Response, error) {
	params := service.ListParams{
		Filter: models.CompanyFilter{
			Category: c.Query("category"),
			Status:   c.Query("status"),
			Search:   c.Query("search"),
		},
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", service.DefaultPerPage),
	}

	companies, total, params, err := h.services.CompanyService.List(c.Request.Context(), params)
	if err != nil {
		return nil, err
	}

	return models.Paginated(companies, total, params.Page, params.PerPage, "companies retrieved successfully"), nil
}

// getCompany answers GET /companies/{id}.
func (h *Handler) getCompany(c *router.Context) (*models.Response, error) {
	id, err := companyID(c)
	if err != nil {
		return nil, err
	}

	company, err := h.services.CompanyService.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}

	return models.Success(company, "company retrieved successfully", 200), nil
}

// createCompany answers POST /companies.
func (h *Handler) createCompany(c *router.Context) (*models.Response, error) {
	var input models.CompanyInput
	if err := c.DecodeJSON(&input); err != nil {
		return nil, err
	}

	company, err := h.services.CompanyService.Create(c.Request.Context(), input)
	if err != nil {
		return nil, err
	}

	return models.Success(company, "company created successfully", 201), nil
}

// updateCompany answers PUT /companies/{id}: a partial update touching
// only the fields present in the body.
func (h *Handler) updateCompany(c *router.Context) (*models.Response, error) {
	id, err := companyID(c)
	if err != nil {
		return nil, err
	}

	var input models.CompanyInput
	if err := c.DecodeJSON(&input); err != nil {
		return nil, err
	}

	company, err := h.services.CompanyService.Update(c.Request.Context(), id, input)
	if err != nil {
		return nil, err
	}

	return models.Success(company, "company updated successfully", 200), nil
}

// deleteCompany answers DELETE /companies/{id}. Companies with send
// history are deactivated and kept; the rest are removed.
func (h *Handler) deleteCompany(c *router.Context) (*models.Response, error) {
	id, err := companyID(c)
	if err != nil {
		return nil, err
	}

	deactivated, err := h.services.CompanyService.Delete(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}

	message := "company deleted successfully"
	if deactivated {
		message = "company has send history and was deactivated"
	}

	return models.Success(map[string]bool{"deactivated": deactivated}, message, 200), nil
}

// companyID parses the {id} route parameter.
func companyID(c *router.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.ErrInvalidCompanyID
	}
	return id, nil
}
