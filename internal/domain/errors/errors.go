// Package errors defines the application error taxonomy surfaced to callers.
package errors

import (
	"net/http"

	"gatehouse/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional diagnostic detail
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

// WrapMessage wraps the error with additional context message.
// errors.Is against the base error still matches the result.
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

// Predefined error types
var (
	// ErrInvalidCredentials is returned at login time when the uid or the
	// password does not match. The message never says which one.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid user credentials",
		"",
	)

	// ErrUnauthorized is returned at authentication time when neither the
	// session nor a remember-me cookie nor a bearer token resolves to a user.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized access",
		"",
	)

	// ErrMisconfiguredProvider is returned when an operation needs an optional
	// provider capability that was not wired. It is a developer error.
	ErrMisconfiguredProvider = NewBaseError(
		http.StatusInternalServerError,
		"MISCONFIGURED_PROVIDER",
		"Authentication provider is not configured for this operation",
		"",
	)

	ErrInvalidGuardUser = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_GUARD_USER",
		"Cannot log in a user without an identifier",
		"",
	)

	ErrAbilityDenied = NewBaseError(
		http.StatusForbidden,
		"ABILITY_DENIED",
		"Access token is not allowed to perform this action",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"Access token not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// It keeps the driver error reachable through Unwrap so infrastructure
// failures propagate unchanged to callers that inspect them.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
