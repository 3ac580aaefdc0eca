package form

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-()+]+$`)
)

const (
	msgInvalidEmail = "Please enter a valid email address"
	msgInvalidPhone = "Please enter a valid phone number"
	msgRequired     = "This field is required"
)

// validateValue applies the rule for a field kind to a trimmed value.
func validateValue(kind FieldKind, required bool, value string) ValidationResult {
	switch kind {
	case KindEmail:
		if !emailPattern.MatchString(value) {
			return ValidationResult{Reason: msgInvalidEmail}
		}
	case KindTel:
		if !phonePattern.MatchString(value) || phoneDigits(value) < 10 {
			return ValidationResult{Reason: msgInvalidPhone}
		}
	default:
		if required && value == "" {
			return ValidationResult{Reason: msgRequired}
		}
	}
	return ValidationResult{Valid: true}
}

// phoneDigits counts the digits left after stripping formatting characters.
func phoneDigits(value string) int {
	stripped := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
	return len(stripped)
}
