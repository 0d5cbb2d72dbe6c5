package format

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the shape of an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone reports whether s contains at least nine digits.
func ValidPhone(s string) bool {
	return len(digitsOnly(s)) >= 9
}

// Required reports whether s has non-blank content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}
