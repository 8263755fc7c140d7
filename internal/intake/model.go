package intake

import (
	"net/http"
	"strings"
	"time"

	"github.com/vistaroofing/contact-service/internal/validate"
)

// Submission is one validated contact-form payload, immutable once built.
// A record only exists after server-side validation has passed; delivery
// failures are captured in EmailSent, never by mutating fields.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Service     string    `json:"service"`
	Location    string    `json:"location"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	EmailSent   bool      `json:"email_sent"`
}

// FormRequest holds the sanitized contact-form fields before validation.
type FormRequest struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Location string
	Message  string
	Consent  bool
}

// FormRequestFromHTTP extracts and sanitizes form fields from a POST body
// (url-encoded or multipart). Sanitization trims and strips markup; escaping
// is deferred to output.
func FormRequestFromHTTP(r *http.Request) FormRequest {
	return FormRequest{
		Name:     validate.Sanitize(r.PostFormValue("name")),
		Email:    validate.Sanitize(r.PostFormValue("email")),
		Phone:    validate.Sanitize(r.PostFormValue("phone")),
		Service:  validate.Sanitize(r.PostFormValue("service")),
		Location: validate.Sanitize(r.PostFormValue("location")),
		Message:  validate.Sanitize(r.PostFormValue("message")),
		Consent:  truthy(r.PostFormValue("consent")),
	}
}

// Validate applies every rule and accumulates all failures; it never stops at
// the first one so the response can report them jointly.
func (f *FormRequest) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.Name == "" {
		errs = append(errs, ErrNameRequired)
	}

	if f.Email == "" {
		errs = append(errs, ErrEmailRequired)
	} else if !validate.Email(f.Email) {
		errs = append(errs, ErrEmailInvalid)
	}

	// Phone is optional, but a present value must carry at least ten digits.
	if f.Phone != "" && !validate.MinDigits(f.Phone, 10) {
		errs = append(errs, ErrPhoneInvalid)
	}

	if f.Message == "" {
		errs = append(errs, ErrMessageRequired)
	}

	if !f.Consent {
		errs = append(errs, ErrConsentRequired)
	}

	return errs
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "false", "0", "off":
		return false
	}
	return true
}
