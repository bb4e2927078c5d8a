package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgNotFound = "not found"
	MsgConflict = "already exists"
)

// NewError creates a new AppError with standardized message format
func NewError(scope string, code int, msg string, httpStatus int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return New(code, formattedMsg, httpStatus, cause)
}
