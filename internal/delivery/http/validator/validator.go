// Package validator plugs go-playground/validator into echo's request binding.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request bodies by their `validate` struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

var _ echo.Validator = (*CustomValidator)(nil)
