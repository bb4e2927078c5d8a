package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsRequestValid validates req against its `validate` tags. On failure the
// message lists each failing field and rule.
func IsRequestValid(req any) (bool, string) {
	err := validate.Struct(req)
	if err == nil {
		return true, ""
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false, err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}
	return false, strings.Join(msgs, "; ")
}
