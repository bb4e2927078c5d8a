package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// AppError is an error that carries an application code and the HTTP
// status it should be rendered with.
type AppError struct {
	Code       int
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	return &AppError{Code: code, Message: msg, HTTPStatus: httpStatus, Cause: cause}
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
