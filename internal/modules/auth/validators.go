package auth

import (
	"regexp"
	"strings"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	otpRegex     = regexp.MustCompile(`^\d{6}$`)
	nonDigits    = regexp.MustCompile(`\D`)
	hasLower     = regexp.MustCompile(`[a-z]`)
	hasUpper     = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`\d`)
	hasSpecial   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	passwordMin  = 6
	phoneDigits  = 10
)

// ValidEmail checks the address shape used across the reset wizard.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPhone strips non-digit characters and requires exactly ten digits.
func ValidPhone(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) == phoneDigits
}

// NormalizePhone returns the bare digits of a phone number.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidOTP checks the 6-digit code format. Format only; the code itself is
// verified against the stored hash.
func ValidOTP(code string) bool {
	return otpRegex.MatchString(code)
}

// ValidPassword enforces the reset-wizard password policy: at least six
// characters with a lowercase letter, an uppercase letter, a digit and a
// special character.
func ValidPassword(password string) bool {
	if len(password) < passwordMin {
		return false
	}
	return hasLower.MatchString(password) &&
		hasUpper.MatchString(password) &&
		hasDigit.MatchString(password) &&
		hasSpecial.MatchString(password)
}
