package intake

import (
	"errors"
	"strings"
)

// Validation errors double as the user-facing messages returned by the
// endpoint, hence the sentence casing.
var (
	ErrNameRequired    = errors.New("Name is required")
	ErrEmailRequired   = errors.New("Email is required")
	ErrEmailInvalid    = errors.New("Please enter a valid email address")
	ErrPhoneInvalid    = errors.New("Please enter a valid phone number")
	ErrMessageRequired = errors.New("Project details are required")
	ErrConsentRequired = errors.New("You must agree to be contacted")
)

// ValidationErrors collects every rule a request violated.
type ValidationErrors []error

// Message joins all violations into the single string the endpoint returns.
func (v ValidationErrors) Message() string {
	parts := make([]string, len(v))
	for i, err := range v {
		parts[i] = err.Error()
	}
	return strings.Join(parts, ", ")
}

// Has reports whether a specific rule is among the violations.
func (v ValidationErrors) Has(target error) bool {
	for _, err := range v {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
