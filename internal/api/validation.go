package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lk16/reversi/internal/game"
)

var validate = newValidator()

// newValidator creates a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrValidation is wrapped by all errors returned from Validate.
var ErrValidation = errors.New("validation failed")

// Validate checks the struct tags of a request payload.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var details strings.Builder
	for _, fieldErr := range validationErrors {
		if details.Len() > 0 {
			details.WriteString("; ")
		}

		field := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", field)
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", field, fieldErr.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", field, fieldErr.Param())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", field, fieldErr.Param())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", field, fieldErr.Tag())
		}
	}

	return fmt.Errorf("%w: %s", ErrValidation, details.String())
}

// TurnPolicy returns the requested turn policy, or fallback if none was requested.
func (r NewGameRequest) TurnPolicy(fallback game.TurnPolicy) (game.TurnPolicy, error) {
	if r.Policy == "" {
		return fallback, nil
	}
	return game.ParseTurnPolicy(r.Policy)
}
