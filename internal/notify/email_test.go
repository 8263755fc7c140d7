package notify

import (
	"context"
	"testing"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "noreply@vistaroofing.org",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "noreply@vistaroofing.org",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Vista Roofing Contact Form" {
		t.Errorf("expected default from name, got %q", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "mkearl@gmail.com",
		Subject: "New Contact Form Submission - Vista Roofing",
		Body:    "body",
	})

	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestNewSMTPSender_NilWithoutHost(t *testing.T) {
	if sender := NewSMTPSender(SMTPConfig{}, nil); sender != nil {
		t.Error("expected nil sender when host is empty")
	}
}

func TestNewSMTPSender_Defaults(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host:      "mail.vistaroofing.org",
		FromEmail: "noreply@vistaroofing.org",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Vista Roofing Contact Form" {
		t.Errorf("expected default from name, got %q", sender.fromName)
	}
}

func TestSMTPSender_Send_CancelledContext(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host:      "mail.vistaroofing.org",
		FromEmail: "noreply@vistaroofing.org",
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, EmailMessage{To: "mkearl@gmail.com", Subject: "x", Body: "y"})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestNewSESSender_NilWithoutClient(t *testing.T) {
	if sender := NewSESSender(nil, SESConfig{FromEmail: "noreply@vistaroofing.org"}, nil); sender != nil {
		t.Error("expected nil sender when SES client is nil")
	}
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(nil)

	err := sender.Send(context.Background(), EmailMessage{
		To:      "mkearl@gmail.com",
		ReplyTo: "jane@example.com",
		Subject: "New Contact Form Submission - Vista Roofing",
		Body:    "body",
	})

	if err != nil {
		t.Errorf("stub sender should not return error, got: %v", err)
	}
}
