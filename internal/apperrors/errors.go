package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoIDsProvided indicates that a batch operation was invoked with an empty id set.
var ErrNoIDsProvided = errors.New("no ids provided")

// ErrNotificationUnavailable indicates that the notification channel is not
// configured or that delivery failed. Notification failures never abort an
// already-committed ledger write.
var ErrNotificationUnavailable = errors.New("notification unavailable")

// AppError carries an internal status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
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
