// Package validator adapts go-playground/validator to echo.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns an echo validator with required struct checks enabled.
func New() echo.Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
