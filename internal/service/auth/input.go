package auth

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username        string `form:"username"  validate:"required,max=150"`
	Password        string `form:"password1" validate:"required,min=8"`
	PasswordConfirm string `form:"password2" validate:"required,eqfield=Password"`
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var extra []domain.FieldError

	if i.Username != "" && !usernamePattern.MatchString(i.Username) {
		extra = append(extra, domain.FieldError{
			Field:   "username",
			Message: "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
		})
	}
	if i.Password != "" && isAllDigits(i.Password) {
		extra = append(extra, domain.FieldError{Field: "password1", Message: "This password is entirely numeric."})
	}

	var extraErr error
	if len(extra) > 0 {
		extraErr = domain.NewValidationErrors(extra)
	}
	return domain.MergeValidation(domain.ValidateStruct(i), extraErr)
}

func isAllDigits(s string) bool {
	return strings.Trim(s, "0123456789") == ""
}

// LoginInput is the sign-in form.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	return domain.ValidateStruct(i)
}
