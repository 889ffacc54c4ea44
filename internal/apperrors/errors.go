package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAmountExceedsBalance indicates a payment larger than what is still owed on a credit sale.
// It is a validation failure, so errors.Is(err, ErrValidation) also holds.
var ErrAmountExceedsBalance = fmt.Errorf("%w: amount exceeds remaining balance", ErrValidation)

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource changed between read and write (stale version)
// or that the requested state change clashes with the current state.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrPersistence indicates that the storage layer failed to read or write.
var ErrPersistence = errors.New("persistence error")

// ErrStaleReference indicates a record pointing at another record that no longer resolves.
var ErrStaleReference = errors.New("stale reference")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish code and message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. Codes >= 500 are treated as persistence failures by Is.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrPersistence) match server-side AppErrors and
// errors.Is(err, ErrValidation) match 400 AppErrors.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrPersistence:
		return e.Code >= 500
	case ErrValidation:
		return e.Code == 400
	}
	return false
}
