package models

import "time"

// Company represents a target company record managed through the admin API.
// It is the primary aggregate of the system: list, detail, create, update
// and delete operations all act on this entity.
type Company struct {
	// ID is the internal unique identifier assigned by the database.
	ID int64 `json:"id"`

	// CompanyName is the display name of the company. Required on create.
	CompanyName string `json:"company_name"`

	// Domain is the company's web domain. Required on create and unique
	// across all companies; a duplicate is rejected with a conflict.
	Domain string `json:"domain"`

	// Industry is an optional free-form industry label.
	Industry *string `json:"industry"`

	// ContactFormURL is the optional URL of the company's contact form.
	ContactFormURL *string `json:"contact_form_url"`

	// Category groups companies for filtering (e.g. main list vs. trial).
	Category string `json:"category"`

	// Priority orders companies within a category. Higher means earlier.
	Priority int `json:"priority"`

	// HasRecaptcha marks contact forms protected by a CAPTCHA.
	HasRecaptcha bool `json:"has_recaptcha"`

	// Notes holds optional operator remarks.
	Notes *string `json:"notes"`

	// Status is the lifecycle state, "active" or "inactive". Companies
	// with send history are deactivated instead of deleted.
	Status string `json:"status"`

	// CreatedAt is the creation timestamp. Listings are newest-first.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Company model.
func (c Company) TableName() string {
	return "companies"
}

// Company lifecycle states.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// CompanyFilter carries the optional list-endpoint filters. Zero values
// mean "no filter"; Search matches company_name and domain as a substring.
type CompanyFilter struct {
	Category string
	Status   string
	Search   string
}

// CompanyInput is the decoded request body for create and update
// operations. Pointer fields distinguish "absent" from "zero value" so
// updates touch only the fields the caller actually sent.
type CompanyInput struct {
	CompanyName    *string `json:"company_name"`
	Domain         *string `json:"domain"`
	Industry       *string `json:"industry"`
	ContactFormURL *string `json:"contact_form_url"`
	Category       *string `json:"category"`
	Priority       *int    `json:"priority"`
	HasRecaptcha   *bool   `json:"has_recaptcha"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`
}

// IsEmpty reports whether the input carries no updatable fields at all.
// An empty update is rejected before the store is touched.
func (in CompanyInput) IsEmpty() bool {
	return in.CompanyName == nil &&
		in.Domain == nil &&
		in.Industry == nil &&
		in.ContactFormURL == nil &&
		in.Category == nil &&
		in.Priority == nil &&
		in.HasRecaptcha == nil &&
		in.Notes == nil &&
		in.Status == nil
}
