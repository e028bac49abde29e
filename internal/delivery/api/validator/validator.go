// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports json field names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate fails with ErrValidationFailed naming the offending fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		problems = append(problems, fieldErr.Field()+": "+fieldErr.Tag())
	}

	return domainerrors.ErrValidationFailed.WrapMessage(strings.Join(problems, ", "))
}
