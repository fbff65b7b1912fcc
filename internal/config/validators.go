package config

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// registerExclusive adds a custom validation ensuring two sibling fields are
// mutually exclusive.
func registerExclusive(validate *validator.Validate) error {
	if err := validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	return nil
}

// validateExclusive checks that the tagged field and the field named in the
// tag parameter are not both set. Returns false if both have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	otherFieldName := fl.Param()
	field := fl.Field()
	otherField := fl.Parent().FieldByName(otherFieldName)

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return !(field.String() != "" && otherField.String() != "")
	}

	return true
}
