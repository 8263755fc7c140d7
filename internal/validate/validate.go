package validate

import (
	"regexp"
	"strings"
)

// Kind declares how a form field should be validated.
type Kind int

const (
	// KindText accepts any value, including empty.
	KindText Kind = iota
	// KindRequired rejects values that are empty after trimming.
	KindRequired
	// KindEmail requires a value matching the email grammar.
	KindEmail
	// KindTel accepts empty values; non-empty values must look like a phone number.
	KindTel
)

// Result reports whether a field passed and, if not, a user-facing message.
type Result struct {
	Valid   bool
	Message string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telPattern   = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// Field checks a single form value against its declared kind.
func Field(value string, kind Kind) Result {
	trimmed := strings.TrimSpace(value)

	switch kind {
	case KindRequired:
		if trimmed == "" {
			return Result{Message: "This field is required."}
		}
	case KindEmail:
		if trimmed == "" {
			return Result{Message: "This field is required."}
		}
		if !Email(trimmed) {
			return Result{Message: "Please enter a valid email address."}
		}
	case KindTel:
		if trimmed == "" {
			return Result{Valid: true}
		}
		if !Phone(trimmed) {
			return Result{Message: "Please enter a valid phone number."}
		}
	}
	return Result{Valid: true}
}

// Email reports whether s matches the address grammar: something before an @,
// something after it, and a dot-separated suffix, with no whitespace anywhere.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s, reduced to its digits, forms a plausible number
// (leading digit non-zero, at most 16 characters).
func Phone(s string) bool {
	return telPattern.MatchString(Digits(s))
}

// Digits strips every non-digit character except a leading plus sign.
func Digits(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MinDigits reports whether s contains at least n digit characters.
// Used by the server-side phone rule, which demands 10 digits.
func MinDigits(s string, n int) bool {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count >= n
}
