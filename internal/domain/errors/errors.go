// Package errors defines the shared error taxonomy for authentication and
// location failures. Raw provider, store and platform errors are mapped into
// these kinds at each component boundary and never cross into the session
// layer unwrapped.
package errors

import (
	"net/http"

	"motion/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"Email is already in use",
		"",
	)

	ErrNoActiveSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_ACTIVE_SESSION",
		"No authenticated session",
		"",
	)

	// Location-related errors
	ErrServicesDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICES_DISABLED",
		"Location services are disabled",
		"",
	)

	ErrAuthorizationDenied = NewBaseError(
		http.StatusForbidden,
		"AUTHORIZATION_DENIED",
		"Location access was denied",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)
)

// UnknownError wraps an unmapped underlying cause. Provider codes the
// centralized mapping does not recognize, and store or platform failures
// with no dedicated kind, all land here.
type UnknownError struct {
	err     error
	details string
}

// NewUnknownError creates an UnknownError carrying the given cause
func NewUnknownError(err error, details string) AppError {
	return &UnknownError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *UnknownError) Error() string {
	return errors.Wrap(e.err, "unknown failure").Error()
}

// Unwrap exposes the underlying cause for errors.Is / errors.As
func (e *UnknownError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UnknownError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UnknownError) ErrorCode() string {
	return "UNKNOWN"
}

// Message returns the user-friendly error message
func (e *UnknownError) Message() string {
	return "An unexpected error occurred"
}

// Details returns detailed error information
func (e *UnknownError) Details() string {
	return e.details
}
