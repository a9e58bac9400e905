package dto

import "net/http"

// Codes produced outside the domain layer
const (
	CodeInternal     = "INTERNAL_ERROR"
	CodeRateLimited  = "RATE_LIMITED"
	CodeBodyTooLarge = "BODY_TOO_LARGE"
	CodeRouteMissing = "ROUTE_NOT_FOUND"
)

// InternalErrorMessage is the only text a 500 response carries
const InternalErrorMessage = "Internal server error"

var statusByCode = map[string]int{
	"INVALID_INPUT":      http.StatusBadRequest,
	"INSUFFICIENT_STOCK": http.StatusBadRequest,
	"NOT_FOUND":          http.StatusNotFound,
	"ALREADY_EXISTS":     http.StatusConflict,
	"DUPLICATE_REQUEST":  http.StatusConflict,
	"UNAUTHORIZED":       http.StatusUnauthorized,
	"FORBIDDEN":          http.StatusForbidden,
	CodeRateLimited:      http.StatusTooManyRequests,
	CodeBodyTooLarge:     http.StatusRequestEntityTooLarge,
	CodeRouteMissing:     http.StatusNotFound,
}

// ErrorCodeToHTTPStatus maps a domain error code to its HTTP status.
// Unknown codes are server errors.
func ErrorCodeToHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
