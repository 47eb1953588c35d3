package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check validates struct fields against their validate tags and returns a
// single readable error, or nil.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var parts []string
	for _, fe := range err.(validator.ValidationErrors) {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, ", "))
}
