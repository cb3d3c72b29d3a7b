package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed binding rule on a request field.
type FieldError struct {
	Field string `json:"field" example:"email"`
	Rule  string `json:"rule" example:"required"`
	Param string `json:"param,omitempty" example:"6"`
}

// ValidationDetails converts a binding error into field-level detail
// entries for the error envelope. Errors that are not validator
// failures fall back to their plain message.
func ValidationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return details
	}
	return err.Error()
}
