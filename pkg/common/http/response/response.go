package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-bptree/pkg/common/apperr"
)

// Response codes
const (
	CodeSuccess          = 2000
	CodeParamInvalid     = 4000
	CodeNotFound         = 4004
	CodeConflict         = 4009
	CodeValidationFailed = 4022
	CodeInternalServer   = 5000
)

var messages = map[int]string{
	CodeSuccess:          "success",
	CodeParamInvalid:     "invalid parameters",
	CodeNotFound:         "not found",
	CodeConflict:         "conflict",
	CodeValidationFailed: "validation failed",
	CodeInternalServer:   "internal server error",
}

var statuses = map[int]int{
	CodeSuccess:          http.StatusOK,
	CodeParamInvalid:     http.StatusBadRequest,
	CodeNotFound:         http.StatusNotFound,
	CodeConflict:         http.StatusConflict,
	CodeValidationFailed: http.StatusUnprocessableEntity,
	CodeInternalServer:   http.StatusInternalServerError,
}

// Envelope is the JSON body of every response.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Message returns the default message for code.
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[CodeInternalServer]
}

// SuccessResponse writes a 200 envelope holding data.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(http.StatusOK, Envelope{Code: code, Message: Message(code), Data: data})
}

// ErrorResponse writes an error envelope. An *apperr.AppError in err's
// chain decides the code and status, otherwise code does.
func ErrorResponse(c *gin.Context, code int, err any) {
	status, ok := statuses[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	msg := Message(code)

	switch e := err.(type) {
	case error:
		if appErr, ok := apperr.As(e); ok {
			code, status, msg = appErr.Code, appErr.HTTPStatus, appErr.Message
		} else {
			msg = e.Error()
		}
	case string:
		if e != "" {
			msg = e
		}
	}

	c.AbortWithStatusJSON(status, Envelope{Code: code, Message: msg})
}

// ToErrorResponse flattens a bind or validation failure into a message.
func ToErrorResponse(err any) string {
	switch e := err.(type) {
	case error:
		return e.Error()
	case string:
		return e
	default:
		return ""
	}
}
