package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/pos-api/internal/domain"
)

// ValidationFailed valor de "error" en las respuestas 422.
const ValidationFailed = "Validation failed"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationError entrada rechazada por las reglas declarativas del DTO.
type ValidationError struct {
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

type fieldMessenger interface {
	FieldMessages() map[string]string
}

// Validate aplica los tags `validate` del DTO. Devuelve *ValidationError con el
// mensaje del primer campo inválido.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Details: describe(in, fe)}
}

func describe(in any, fe validator.FieldError) string {
	if m, ok := in.(fieldMessenger); ok {
		if msg, ok := m.FieldMessages()[fe.Field()]; ok {
			return msg
		}
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fe.Field() + " is invalid"
	}
}
