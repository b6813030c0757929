// Package apperr defines the error kinds shared by all domain packages.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation marks a malformed field value rejected at write time.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an operation on an id or index that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientData marks a derived read without enough usable input.
	// It is a recoverable, user-facing warning rather than a failure.
	ErrInsufficientData = errors.New("insufficient data")
)

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// InsufficientDataf wraps ErrInsufficientData with a formatted detail message.
func InsufficientDataf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInsufficientData}, args...)...)
}

// HTTPStatus maps an error to the response status used across handlers.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
