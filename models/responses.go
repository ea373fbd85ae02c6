package models

// Response is the uniform envelope every API endpoint answers with.
// Exactly one Response is written per request: by a handler, by the
// dispatcher's error fold, or by the not-found path.
//
// Serialized shape:
//
//	{"success": bool, "status_code": int, "message": string,
//	 "data": any|null, "errors": {field: message}}   // errors only when non-empty
type Response struct {
	// Success is derived from StatusCode: true for codes in [200,300).
	Success bool `json:"success"`

	// StatusCode is the HTTP status the envelope is written with.
	StatusCode int `json:"status_code"`

	// Message is a human-readable summary. Error envelopes always carry
	// one; internal diagnostics appear here only in debug mode.
	Message string `json:"message"`

	// Data is the payload of a success envelope. Null whenever Errors
	// is populated.
	Data any `json:"data"`

	// Errors maps field names to validation messages. Omitted from the
	// serialized form entirely when empty.
	Errors map[string]string `json:"errors,omitempty"`
}

// PaginationMeta describes the page window of a paginated listing.
type PaginationMeta struct {
	// Total is the number of records matching the query across all pages.
	Total int64 `json:"total"`

	// PerPage is the requested page size.
	PerPage int `json:"per_page"`

	// CurrentPage is the 1-based page number.
	CurrentPage int `json:"current_page"`

	// LastPage is ceil(Total/PerPage); 0 when Total is 0.
	LastPage int64 `json:"last_page"`

	// From is the 1-based index of the first record on this page.
	From int64 `json:"from"`

	// To is the 1-based index of the last record on this page;
	// 0 when Total is 0.
	To int64 `json:"to"`
}

// PaginatedData is the data block of a paginated success envelope.
type PaginatedData struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// Success builds a success envelope with the given payload, message and
// status code (200 for plain reads, 201 for creations).
func Success(data any, message string, statusCode int) *Response {
	return &Response{
		Success:    statusCode >= 200 && statusCode < 300,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

// Error builds an error envelope. Data is always null on error
// envelopes; errs may carry a field→message map for client errors.
func Error(message string, statusCode int, errs map[string]string) *Response {
	resp := &Response{
		Success:    statusCode >= 200 && statusCode < 300,
		StatusCode: statusCode,
		Message:    message,
	}
	if len(errs) > 0 {
		resp.Errors = errs
	}
	return resp
}

// ValidationError builds a 422 envelope carrying the field→message map.
func ValidationError(errs map[string]string, message string) *Response {
	return Error(message, 422, errs)
}

// Unauthorized builds a 401 envelope.
func Unauthorized(message string) *Response {
	return Error(message, 401, nil)
}

// Forbidden builds a 403 envelope.
func Forbidden(message string) *Response {
	return Error(message, 403, nil)
}

// NotFound builds a 404 envelope.
func NotFound(message string) *Response {
	return Error(message, 404, nil)
}

// Conflict builds a 409 envelope.
func Conflict(message string) *Response {
	return Error(message, 409, nil)
}

// ServerError builds a 500 envelope.
func ServerError(message string) *Response {
	return Error(message, 500, nil)
}

// ServiceUnavailable builds a 503 envelope.
func ServiceUnavailable(message string) *Response {
	return Error(message, 503, nil)
}

// Paginated wraps records and the computed page window into the data
// block of a success envelope.
//
// Window rules: last_page = ceil(total/per_page),
// from = (page-1)*per_page + 1, to = min(page*per_page, total).
// For total = 0 this yields from = 1, to = 0.
func Paginated(records any, total int64, page, perPage int, message string) *Response {
	lastPage := (total + int64(perPage) - 1) / int64(perPage)

	from := int64(page-1)*int64(perPage) + 1
	to := int64(page) * int64(perPage)
	if to > total {
		to = total
	}

	return Success(PaginatedData{
		Data: records,
		Meta: PaginationMeta{
			Total:       total,
			PerPage:     perPage,
			CurrentPage: page,
			LastPage:    lastPage,
			From:        from,
			To:          to,
		},
	}, message, 200)
}
