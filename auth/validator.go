package auth

import (
	"care-chat/errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MaxIdentifierLength bounds user IDs accepted during a plain handshake.
const MaxIdentifierLength = 128

type LoginRequest struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,max=72"`
}

type identifier struct {
	Value string `validate:"required,max=128,printascii"`
}

type PasswordRequest struct {
	Password string `validate:"required,min=12,max=72"`
}

func ValidateLogin(req LoginRequest) error {
	return validate.Struct(req)
}

func validateIdentifier(id string) error {
	return validate.Struct(identifier{Value: id})
}

// ValidatePassword applies the complexity rules used when seeding directory accounts.
func ValidatePassword(password string) error {
	if err := validate.Struct(PasswordRequest{Password: password}); err != nil {
		return err
	}
	if !isPasswordComplex(password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

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
