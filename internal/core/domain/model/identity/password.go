package identity

import (
	"errors"
	"strings"
	"unicode"

	"dronedelivery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8

	// PasswordSpecialCharacters lists the accepted special characters.
	PasswordSpecialCharacters = `!@#$%^&*(),.?":{}|<>`
)

// ErrWeakPassword is wrapped by every password policy violation.
var ErrWeakPassword = errors.New("password is too weak")

// ValidatePassword enforces the password policy and reports every unmet rule.
func ValidatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSpecialCharacters, r):
			hasSpecial = true
		}
	}

	var problems []error
	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, errors.New("must be at least 8 characters long"))
	}
	if !hasUpper {
		problems = append(problems, errors.New("must contain an uppercase letter"))
	}
	if !hasLower {
		problems = append(problems, errors.New("must contain a lowercase letter"))
	}
	if !hasDigit {
		problems = append(problems, errors.New("must contain a digit"))
	}
	if !hasSpecial {
		problems = append(problems, errors.New("must contain one of "+PasswordSpecialCharacters))
	}
	if len(problems) == 0 {
		return nil
	}

	return errs.NewValueIsInvalidErrorWithCause("password", errors.Join(append([]error{ErrWeakPassword}, problems...)...))
}

// HashPassword validates the policy and returns a salted bcrypt hash.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(hash), nil
}
