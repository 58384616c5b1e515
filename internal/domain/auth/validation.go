package auth

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var validate = validator.New()

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"min=6"`
}

type signupInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required"`
	Password        string `validate:"min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// ValidateLogin checks the login presence and length rules.
func ValidateLogin(email, password string) error {
	if err := validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ValidateSignup checks the signup rules. The name is trimmed first so a
// blank name is rejected.
func ValidateSignup(req SignupRequest) error {
	in := signupInput{
		Name:            strings.TrimSpace(req.Name),
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if err := validate.Struct(in); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
