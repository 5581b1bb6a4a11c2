package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"school-records/app/apperr"
)

var validate = validator.New()

// Struct runs the validator tags on a request DTO and converts failures into
// a ValidationFailed error naming the offending fields. Only field names and
// rule names are surfaced, never values.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("Invalid request")
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return apperr.Validation("Validation failed: " + strings.Join(parts, ", "))
}
