package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the service. The HTTP layer maps these to status
// codes: VALIDATION_ERROR -> 400, NOT_FOUND -> 404, UNAUTHORIZED -> 401,
// FORBIDDEN -> 403, everything else -> 500.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeStorage      = "STORAGE_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrUnauthorized = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrForbidden    = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
)

// NewValidationError creates a validation error naming the offending field(s)
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewValidationErrorf creates a validation error with a formatted message
func NewValidationErrorf(format string, args ...any) *DomainError {
	return NewDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

// NewStorageError wraps a backing-store failure
func NewStorageError(message string) *DomainError {
	return NewDomainError(CodeStorage, message)
}
