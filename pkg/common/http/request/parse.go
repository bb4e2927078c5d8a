package request

import (
	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-bptree/pkg/common/http/response"
	"github.com/huynhanx03/go-bptree/pkg/common/http/validation"
)

// ParseRequest binds path parameters and, when a body is present, the JSON
// body into T, then validates it. A body of unknown length (chunked) counts
// as present. On failure the error response is already written and ok is
// false.
func ParseRequest[T any](c *gin.Context) (*T, bool) {
	var req T

	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(&req); err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, response.ToErrorResponse(err))
			return nil, false
		}
	}

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, response.ToErrorResponse(err))
			return nil, false
		}
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		response.ErrorResponse(c, response.CodeValidationFailed, response.ToErrorResponse(msg))
		return nil, false
	}

	return &req, true
}
