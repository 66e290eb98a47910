package auth

import (
	"fmt"
	"unicode"
	apperr "warehouse-portal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Whitespace-only destinations and bodies count as missing
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// Validate checks the struct tags of a command and wraps any failure in
// ErrValidation.
func Validate(command any) error {
	if err := validate.Struct(command); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return nil
}

// ValidatePassword enforces the colleague password policy: at least
// MinPasswordLength characters with upper, lower, digit and symbol.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength || !isPasswordComplex(password) {
		return apperr.ErrInvalidPassword
	}
	return nil
}

const (
	MinPasswordLength = 10
	MaxPasswordLength = 72
)

func isPasswordComplex(s string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
