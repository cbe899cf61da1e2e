package auth

import (
	"unicode"

	validator "github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/avscott/brainbox-be/internal/apperr"
)

var signupValidator = newSignupValidator()

func newSignupValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only errors on an empty tag name
	_ = v.RegisterValidation("strongpassword", validateStrongPassword)
	return v
}

// validateStrongPassword requires at least 8 characters with one
// uppercase, one lowercase, one digit and one symbol.
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// ValidateSignup enforces the signup policy: the username must be an
// email address and the password must pass the strength check. It runs
// before any store mutation.
func ValidateSignup(username, password string) error {
	if err := signupValidator.Var(username, "required,email"); err != nil {
		return apperr.ErrInvalidEmail
	}
	if err := signupValidator.Var(password, "required,strongpassword"); err != nil {
		return apperr.ErrWeakPassword
	}
	return nil
}

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
