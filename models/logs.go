package models

import "time"

// APILogRecord is one row of the api_logs table: a best-effort audit
// record of a single inbound API request. It is written after the
// response has been sent and is never read back by the request path.
type APILogRecord struct {
	// Endpoint is the raw request URI including the API prefix.
	Endpoint string `json:"endpoint"`

	// Method is the HTTP method of the request.
	Method string `json:"http_method"`

	// RequestData is the serialized request payload, if any.
	RequestData *string `json:"request_data"`

	// ResponseData is the serialized response payload, if any.
	ResponseData *string `json:"response_data"`

	// Status is the HTTP status code that was written.
	Status int `json:"response_status"`

	// Duration is how long the request took end to end.
	Duration time.Duration `json:"execution_time"`

	// UserAgent is the client's User-Agent header, if present.
	UserAgent *string `json:"user_agent"`

	// ClientIP is the requester's address, first entry of the
	// forwarding chain when behind a proxy.
	ClientIP string `json:"ip_address"`

	// ErrorMessage carries the fault summary for failed requests.
	ErrorMessage *string `json:"error_message"`
}

// TableName returns the name of the database table
// associated with the APILogRecord model.
func (r APILogRecord) TableName() string {
	return "api_logs"
}

// SendHistoryRecord is one row of the send_history table: the domain
// event of a contact-form submission attempt against a company.
// Companies with at least one such record are deactivated on delete
// instead of being removed.
type SendHistoryRecord struct {
	ID             int64   `json:"id"`
	CompanyID      int64   `json:"company_id"`
	MessageSubject *string `json:"message_subject"`
	MessageContent *string `json:"message_content"`
	SenderName     *string `json:"sender_name"`
	SenderEmail    *string `json:"sender_email"`
	SenderCompany  *string `json:"sender_company"`
	SenderPhone    *string `json:"sender_phone"`

	// ResponseStatus is the submission outcome: "pending", "success"
	// or "failed".
	ResponseStatus string `json:"response_status"`

	ResponseMessage *string `json:"response_message"`
	HTTPStatusCode  *int    `json:"http_status_code"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SendHistoryRecord model.
func (r SendHistoryRecord) TableName() string {
	return "send_history"
}

// UsageLogRecord is one row of the usage_logs table: a cost-relevant
// record of a text-generation call made while preparing outreach
// content. These records are retained longer than ordinary API logs.
type UsageLogRecord struct {
	CompanyID    *int64  `json:"company_id"`
	TemplateID   *int64  `json:"template_id"`
	PromptText   string  `json:"prompt_text"`
	ResponseText *string `json:"response_text"`
	TokensUsed   int     `json:"tokens_used"`
	ModelVersion string  `json:"model_version"`
	CostUSD      float64 `json:"cost_usd"`

	// ResponseTime is the upstream call duration in seconds.
	ResponseTime float64 `json:"response_time"`

	// Status is "success" or "error".
	Status string `json:"status"`

	ErrorMessage *string `json:"error_message"`
}

// TableName returns the name of the database table
// associated with the UsageLogRecord model.
func (r UsageLogRecord) TableName() string {
	return "usage_logs"
}
