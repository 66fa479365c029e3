// internal/app/system/authutil/password.go
package authutil

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Password validation constants
const (
	MinPasswordLength = 9
	BcryptCost        = 12
)

// SymbolSet is the set of characters that satisfy the symbol rule.
const SymbolSet = `!@#$%^&*(),.?":{}|<>`

// WeakPasswordError reports the first composition rule a candidate password
// violates. Rules are checked in a fixed order (length, uppercase, digit,
// symbol) and only the first failure is reported, so the caller gets one
// actionable reason at a time.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return e.Reason
}

// PasswordRules returns a human-readable description of the password rules.
// This can be displayed on registration and reset forms.
func PasswordRules() string {
	return "Password must be at least 9 characters and include an uppercase letter, a number, and a symbol (" + SymbolSet + ")."
}

// ValidatePassword checks a candidate password against the composition
// rules. Returns nil if valid, or a *WeakPasswordError naming the first
// failed rule. Pure: no I/O, no side effects.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return &WeakPasswordError{Reason: "Password must be at least 9 characters long."}
	}

	hasUpper := false
	hasDigit := false
	hasSymbol := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
		if strings.ContainsRune(SymbolSet, r) {
			hasSymbol = true
		}
	}

	if !hasUpper {
		return &WeakPasswordError{Reason: "Password must contain at least one uppercase letter."}
	}
	if !hasDigit {
		return &WeakPasswordError{Reason: "Password must contain at least one number."}
	}
	if !hasSymbol {
		return &WeakPasswordError{Reason: "Password must contain at least one symbol (" + SymbolSet + ")."}
	}

	return nil
}

// HashPassword hashes a password using bcrypt. bcrypt salts internally, so
// two calls on the same input produce different hashes.
// The password should be validated with ValidatePassword first.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plain-text password with a bcrypt hash.
// Returns true if the password matches, false otherwise. A malformed hash
// (corrupted storage) is a mismatch, never a panic.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
