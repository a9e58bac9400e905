// Package dto holds the HTTP envelope shared by every handler
package dto

// Response is the JSON envelope of every API response
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo carries the machine-readable code of a failure
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta describes one page of a list
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewListResponse creates a success envelope with paging metadata
func NewListResponse(message string, data any, total int64, page, pageSize int) Response {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   &ErrorInfo{Code: code, Message: message},
	}
}
