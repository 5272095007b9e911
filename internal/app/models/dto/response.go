package dto

import "time"

// APIResponse is the uniform envelope every route returns.
// Data is present iff success, Error iff failure.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      interface{} `json:"error,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	StatusCode int         `json:"statusCode"`
}

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(data interface{}, message string, statusCode int) APIResponse {
	return APIResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
		StatusCode: statusCode,
	}
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(errorDetail *ErrorDetail, message string, statusCode int) APIResponse {
	return APIResponse{
		Success:    false,
		Message:    message,
		Error:      errorDetail,
		Timestamp:  time.Now().UTC(),
		StatusCode: statusCode,
	}
}

// PaginationInfo is the metadata block returned by every list endpoint
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// HealthResponse is the payload of the unauthenticated health endpoint
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
}
