package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrStoreUnavailable indicates the underlying persistence layer failed.
// Repository errors wrap this so callers can distinguish storage faults
// from domain errors; they are never retried automatically.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Repositories produce these; handlers map them onto responses.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	// 500-level errors always match ErrStoreUnavailable, in addition to
	// whatever low-level cause the repository attached.
	if e.Code >= 500 {
		if e.Err != nil {
			return errors.Join(e.Err, ErrStoreUnavailable)
		}
		return ErrStoreUnavailable
	}
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
