package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator bridges go-playground/validator into echo's c.Validate.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator ready to assign to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Field failures are
// flattened into a single readable message, one clause per field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	clauses := make([]string, len(fields))
	for i, fe := range fields {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			clauses[i] = name + " is required"
		case "email":
			clauses[i] = name + " must be a valid email"
		case "min":
			clauses[i] = fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		default:
			clauses[i] = fmt.Sprintf("%s failed validation (%s)", name, fe.Tag())
		}
	}
	return errors.New(strings.Join(clauses, "; "))
}
