package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConstraint indicates that the storage engine rejected a write because it
// would break referential integrity (e.g. a transaction linked to a missing debt).
var ErrConstraint = errors.New("constraint violation")

// ErrNotReady indicates the store was used before initialization and migrations completed,
// or after it was closed.
var ErrNotReady = errors.New("store not ready")

// ErrMigration indicates a schema migration failed. Startup must abort.
var ErrMigration = errors.New("migration failed")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
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
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError that matches ErrValidation with errors.Is.
func NewValidationError(message string, cause error) *AppError {
	err := ErrValidation
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrValidation, cause)
	}
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: err}
}

// StatusCode maps an error onto the HTTP status the API reports for it.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConstraint), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNotReady):
		return http.StatusServiceUnavailable
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
