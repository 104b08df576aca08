// Package validator centralizes request-body validation. One shared
// instance reads the `validate` struct tags declared on the DTOs.
package validator

import (
	"errors"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// Validate checks req against its struct tags and returns a
// field-to-rule map of failures, or nil when the value is valid. The
// map plugs straight into the error envelope's details.
func Validate(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"request": "invalid"}
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
