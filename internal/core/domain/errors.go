package domain

import (
	"errors"
	"fmt"
)

// Error codes used across the service. Handlers map these to HTTP statuses.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeOwnershipDenied    = "OWNERSHIP_DENIED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeWeatherRetrieval   = "WEATHER_RETRIEVAL_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error represents domain-specific errors that can occur during service operations.
// It provides structured error information with error codes and optional underlying causes.
type Error struct {
	// Code identifies the type of error for programmatic handling
	Code string

	// Message provides a human-readable error description
	Message string

	// Cause wraps an underlying error if applicable
	Cause error
}

// Error implements the error interface.
// It formats the error message to include the code, message, and underlying cause.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewNotFound returns a NOT_FOUND error for the named resource.
func NewNotFound(resource string, id int64) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %d does not exist", resource, id),
	}
}

// NewValidation returns a VALIDATION_FAILED error with the given message.
func NewValidation(message string) *Error {
	return &Error{
		Code:    CodeValidationFailed,
		Message: message,
	}
}

// IsNotFound reports whether err is a domain error with the NOT_FOUND code.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNotFound
}
