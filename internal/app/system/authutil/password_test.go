// internal/app/system/authutil/password_test.go
package authutil

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword_Valid(t *testing.T) {
	valid := []string{
		"Weakpw1!!",
		"StrongPass1!",
		`Quoted"Pass9`,
		"Aaaaaaaa1<",
	}
	for _, p := range valid {
		if err := ValidatePassword(p); err != nil {
			t.Errorf("ValidatePassword(%q) = %v, want nil", p, err)
		}
	}
}

func TestValidatePassword_FirstRuleWins(t *testing.T) {
	// Rules are checked in order: length, uppercase, digit, symbol.
	// Each case violates the named rule and every later one; the reported
	// reason must belong to the named rule.
	tests := []struct {
		password string
		wantWord string
	}{
		{"Weak1!", "9 characters"},        // too short (also fine otherwise)
		{"ab", "9 characters"},            // short AND no upper/digit/symbol: length reported first
		{"weakpassword1!", "uppercase"},   // long enough, no uppercase
		{"Weakpassword!", "number"},       // no digit
		{"Weakpassword1", "symbol"},       // no symbol
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want error mentioning %q", tt.password, tt.wantWord)
			continue
		}
		var weak *WeakPasswordError
		if !errors.As(err, &weak) {
			t.Errorf("ValidatePassword(%q) error type = %T, want *WeakPasswordError", tt.password, err)
			continue
		}
		if !strings.Contains(weak.Reason, tt.wantWord) {
			t.Errorf("ValidatePassword(%q) reason = %q, want mention of %q", tt.password, weak.Reason, tt.wantWord)
		}
	}
}

func TestValidatePassword_EverySymbolCounts(t *testing.T) {
	for _, sym := range SymbolSet {
		p := "Aaaaaaaa1" + string(sym)
		if err := ValidatePassword(p); err != nil {
			t.Errorf("ValidatePassword(%q) = %v, want nil", p, err)
		}
	}
}

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	const password = "StrongPass1!"

	h1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("HashPassword() produced identical hashes for the same input; salt missing")
	}

	if !CheckPassword(password, h1) {
		t.Error("CheckPassword() rejected the matching password")
	}
	if CheckPassword("WrongPass1!", h1) {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	// Corrupted storage must verify false, not panic.
	malformed := []string{"", "not-a-bcrypt-hash", "$2a$12$truncated"}
	for _, h := range malformed {
		if CheckPassword("StrongPass1!", h) {
			t.Errorf("CheckPassword() accepted malformed hash %q", h)
		}
	}
}
