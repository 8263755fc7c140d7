// Command submit sends a contact form submission to a running
// contact-service instance from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vistaroofing/contact-service/internal/client"
	"github.com/vistaroofing/contact-service/internal/notice"
	"github.com/vistaroofing/contact-service/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	var (
		baseURL = flag.String("url", envOr("CONTACT_SERVICE_URL", "http://localhost:8080"), "base URL of the contact service")
		name    = flag.String("name", "", "your name (required)")
		email   = flag.String("email", "", "your email address (required)")
		phone   = flag.String("phone", "", "your phone number")
		service = flag.String("service", "", "service needed")
		loc     = flag.String("location", "", "project location")
		message = flag.String("message", "", "project details (required)")
		timeout = flag.Duration("timeout", 30*time.Second, "request timeout")
	)
	flag.Parse()

	logger := logging.New(envOr("LOG_LEVEL", "warn"))
	presenter := notice.NewPresenter(os.Stderr, notice.WithTTL(0))

	form := client.Form{
		Name:     *name,
		Email:    *email,
		Phone:    *phone,
		Service:  *service,
		Location: *loc,
		Message:  *message,
		Consent:  true,
	}

	c := client.New(*baseURL, client.WithLogger(logger))

	if verr := c.Validate(form); verr != nil {
		for _, fe := range verr.Fields {
			presenter.Show(fe.Message, notice.Error)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Fprintln(os.Stderr, "Sending...")
	outcome, err := c.Submit(ctx, form)
	if err != nil {
		presenter.Show("Sorry, there was an error sending your message. Please try again.", notice.Error)
		logger.Error("submission failed", "error", err)
		os.Exit(1)
	}

	if outcome.Success {
		presenter.Show(outcome.Message, notice.Success)
		return
	}
	presenter.Show(outcome.Message, notice.Error)
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
