// Package client submits contact forms to the intake endpoint, mirroring the
// behavior of the site's in-browser form handler.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vistaroofing/contact-service/internal/validate"
	"github.com/vistaroofing/contact-service/pkg/logging"
)

// ErrInFlight is returned when a submission is attempted while another one
// from the same client has not finished yet.
var ErrInFlight = errors.New("client: submission already in flight")

// Form holds the user-entered contact form fields.
type Form struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Location string
	Message  string
	Consent  bool
}

// FieldError describes one locally rejected field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates local field failures; no request is sent when
// it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "client: invalid form: " + strings.Join(parts, ", ")
}

// Outcome is the interpreted server response.
type Outcome struct {
	Success bool
	Message string
	Status  int
}

// Client is an HTTP client for the contact intake endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	inFlight   atomic.Bool
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a submission client against baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks the form locally with the same rules the inline field
// validation applies, so an invalid form never reaches the network.
func (c *Client) Validate(form Form) *ValidationError {
	var fields []FieldError

	checks := []struct {
		field string
		value string
		kind  validate.Kind
	}{
		{"name", form.Name, validate.KindRequired},
		{"email", form.Email, validate.KindEmail},
		{"phone", form.Phone, validate.KindTel},
		{"message", form.Message, validate.KindRequired},
	}
	for _, ch := range checks {
		if res := validate.Field(ch.value, ch.kind); !res.Valid {
			fields = append(fields, FieldError{Field: ch.field, Message: res.Message})
		}
	}
	if !form.Consent {
		fields = append(fields, FieldError{Field: "consent", Message: "You must agree to be contacted"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates the form, sends it as one url-encoded POST and interprets
// the JSON response. A non-2xx status with a parseable body is an error
// outcome, not an error; transport failures are returned as errors. Only one
// submission may be in flight per client at a time.
func (c *Client) Submit(ctx context.Context, form Form) (Outcome, error) {
	if verr := c.Validate(form); verr != nil {
		return Outcome{}, verr
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return Outcome{}, ErrInFlight
	}
	defer c.inFlight.Store(false)

	values := url.Values{
		"name":     {form.Name},
		"email":    {form.Email},
		"phone":    {form.Phone},
		"service":  {form.Service},
		"location": {form.Location},
		"message":  {form.Message},
	}
	if form.Consent {
		values.Set("consent", "on")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contact", strings.NewReader(values.Encode()))
	if err != nil {
		return Outcome{}, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("form submission failed", "error", err)
		return Outcome{}, fmt.Errorf("client: submit form: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		// Intermediaries and middleware (rate limiters, proxies) answer in
		// plain text; report those as failed outcomes, not decode errors.
		if resp.StatusCode >= 300 {
			c.logger.Error("form submission rejected without JSON body", "status", resp.StatusCode)
			return Outcome{
				Success: false,
				Message: "Sorry, there was an error sending your message. Please try again.",
				Status:  resp.StatusCode,
			}, nil
		}
		return Outcome{}, fmt.Errorf("client: decode response: %w", err)
	}

	outcome := Outcome{
		Success: body.Success && resp.StatusCode < 300,
		Message: body.Message,
		Status:  resp.StatusCode,
	}
	c.logger.Info("form submission completed", "status", resp.StatusCode, "success", outcome.Success)
	return outcome, nil
}
