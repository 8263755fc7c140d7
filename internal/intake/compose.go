package intake

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

const (
	emailSubject = "New Contact Form Submission - Vista Roofing"

	notProvided  = "Not provided"
	notSpecified = "Not specified"

	timestampLayout = "2006-01-02 15:04:05"
)

// emailTemplate renders the notification body. html/template escapes every
// interpolated field at render time, so sanitized values are stored unescaped
// and encoded exactly once here.
var emailTemplate = template.Must(template.New("contact-email").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>New Contact Form Submission</title>
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px; }
		.container { max-width: 600px; margin: 0 auto; background: #f8fafc; border-radius: 8px; overflow: hidden; }
		.header { background: linear-gradient(135deg, #1e40af, #3b82f6); color: white; padding: 30px; text-align: center; }
		.content { padding: 30px; background: white; }
		.field { margin-bottom: 20px; padding: 15px; background: #f8fafc; border-radius: 6px; border-left: 4px solid #3b82f6; }
		.label { font-weight: bold; color: #1e40af; margin-bottom: 5px; display: block; }
		.value { color: #374151; }
		.footer { background: #1f2937; color: #d1d5db; padding: 20px; text-align: center; font-size: 12px; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1 style="margin: 0; font-size: 24px;">New Contact Form Submission</h1>
			<p style="margin: 10px 0 0 0; opacity: 0.9;">Vista Roofing Website</p>
		</div>
		<div class="content">
			<div class="field">
				<span class="label">Name:</span>
				<span class="value">{{.Name}}</span>
			</div>
			<div class="field">
				<span class="label">Email:</span>
				<span class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></span>
			</div>
			<div class="field">
				<span class="label">Phone:</span>
				<span class="value">{{.Phone}}</span>
			</div>
			<div class="field">
				<span class="label">Service Needed:</span>
				<span class="value">{{.Service}}</span>
			</div>
			<div class="field">
				<span class="label">Property Location:</span>
				<span class="value">{{.Location}}</span>
			</div>
			<div class="field">
				<span class="label">Project Details:</span>
				<span class="value" style="white-space: pre-wrap;">{{.Message}}</span>
			</div>
			<div class="field">
				<span class="label">Submission Time:</span>
				<span class="value">{{.Timestamp}}</span>
			</div>
		</div>
		<div class="footer">
			<p style="margin: 0;">This email was sent from the Vista Roofing contact form on {{.Timestamp}}</p>
		</div>
	</div>
</body>
</html>
`))

type emailData struct {
	Name      string
	Email     string
	Phone     string
	Service   string
	Location  string
	Message   string
	Timestamp string
}

// composeEmail builds the notification subject, HTML body and plain-text
// fallback for one validated submission.
func composeEmail(f FormRequest, submittedAt time.Time) (subject, htmlBody, textBody string, err error) {
	data := emailData{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     orPlaceholder(f.Phone, notProvided),
		Service:   orPlaceholder(f.Service, notSpecified),
		Location:  orPlaceholder(f.Location, notProvided),
		Message:   f.Message,
		Timestamp: submittedAt.UTC().Format(timestampLayout),
	}

	var b strings.Builder
	if err := emailTemplate.Execute(&b, data); err != nil {
		return "", "", "", fmt.Errorf("intake: render email: %w", err)
	}

	text := fmt.Sprintf(
		"New Contact Form Submission - Vista Roofing\n\nName: %s\nEmail: %s\nPhone: %s\nService: %s\nLocation: %s\nMessage: %s\nSubmitted: %s\n",
		data.Name, data.Email, data.Phone, data.Service, data.Location, data.Message, data.Timestamp,
	)

	return emailSubject, b.String(), text, nil
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
