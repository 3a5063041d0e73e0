// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "freshmarket/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for use as echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks the bound request payload against its validate tags.
// Failures surface as a 400 application error with the offending fields listed.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
