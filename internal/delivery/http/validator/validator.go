// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "gearpool/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator, translating validation failures
// into the shared AppError contract.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
