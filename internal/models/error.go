package models

import "errors"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// Sentinel errors shared by services, middleware and controllers
var (
	// ErrUnauthorized means the caller presented no usable token
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means the caller is known but not allowed
	ErrForbidden = errors.New("forbidden access")
	// ErrNotFound is returned by lookups that found nothing
	ErrNotFound = errors.New("not found")
	// ErrBadRequest wraps input validation failures
	ErrBadRequest = errors.New("bad request")
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
