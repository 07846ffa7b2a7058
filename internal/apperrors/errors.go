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

// ErrUnauthorized indicates that no authenticated actor is present on the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the actor lacks authority for the requested mutation.
var ErrForbidden = errors.New("insufficient permissions")

// ErrNoChanges indicates an edit request produced zero field diffs.
// Raised instead of silently accepting the request so resubmission bugs
// upstream stay visible.
var ErrNoChanges = errors.New("no changes detected")

// ErrCannotFinalize indicates an area-specific finalization precondition is not met.
var ErrCannotFinalize = errors.New("area cannot be finalized")

// ErrConflict indicates a concurrent modification was detected.
var ErrConflict = errors.New("conflicting update detected")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping the given cause.
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
