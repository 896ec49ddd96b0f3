// Package apperror provides structured error handling following RFC 7807 Problem Details.
// All catalogue errors must use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"

	// Validation errors (400)
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidInput = "INVALID_INPUT"

	// CodeInvalidCode: raw input does not have the shape of the requested code form.
	CodeInvalidCode = "INVALID_CODE"

	// CodeUnknownCode: well-formed code that is not assigned to any entity.
	CodeUnknownCode = "UNKNOWN_CODE"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// Sentinels for errors.Is matching by code.
var (
	ErrInvalidCode = &AppError{Code: CodeInvalidCode}
	ErrUnknownCode = &AppError{Code: CodeUnknownCode}
)

// AppError is the standard error type for the platform.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (domain, form, offending value)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidCode creates an error for input that does not match the shape of form (400).
func NewInvalidCode(domain, form, value string) *AppError {
	return &AppError{
		Code:       CodeInvalidCode,
		Message:    fmt.Sprintf("invalid %s %s code: %q", domain, form, value),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"domain": domain, "form": form, "value": value},
	}
}

// NewUnknownCode creates an error for a well-formed code with no entity behind it (404).
func NewUnknownCode(domain, form, value string) *AppError {
	return &AppError{
		Code:       CodeUnknownCode,
		Message:    fmt.Sprintf("unknown %s %s code: %q", domain, form, value),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"domain": domain, "form": form, "value": value},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewDatabase wraps a storage failure (500).
func NewDatabase(op string, err error) *AppError {
	return &AppError{
		Code:       CodeDatabase,
		Message:    fmt.Sprintf("database operation failed: %s", op),
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsInvalidCode checks if error is CodeInvalidCode
func IsInvalidCode(err error) bool {
	return errors.Is(err, ErrInvalidCode)
}

// IsUnknownCode checks if error is CodeUnknownCode
func IsUnknownCode(err error) bool {
	return errors.Is(err, ErrUnknownCode)
}
