// file: internals/helpers/validation.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap flattens validator errors into the field->tags shape
// JsonValidationError expects.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
