// Package validator wraps go-playground struct validation behind a
// single call that reports failures as a field-to-tag map, ready to be
// attached to a VALIDATION_ERROR response as details.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks v against its binding tags. A nil result means the
// struct passed.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
