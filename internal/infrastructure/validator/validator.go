package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

const specialChars = "!@#$%^&*()_+-=[]{};:'\\|,.<>/?"

// AppValidator implements usecasecontract.IValidator.
type AppValidator struct {
	validate *validator.Validate
}

func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength requires 8+ characters with an upper, lower, digit and symbol.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsAny(password, unicode.IsUpper) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsAny(password, unicode.IsLower) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsAny(password, unicode.IsNumber) {
		return fmt.Errorf("password must contain at least one number")
	}
	if !containsAny(password, func(r rune) bool { return strings.ContainsRune(specialChars, r) }) {
		return fmt.Errorf("password must contain at least one special character")
	}
	return nil
}

func containsAny(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
