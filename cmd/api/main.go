package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vistaroofing/contact-service/cmd/mainconfig"
	"github.com/vistaroofing/contact-service/internal/api/router"
	appconfig "github.com/vistaroofing/contact-service/internal/config"
	"github.com/vistaroofing/contact-service/internal/intake"
	"github.com/vistaroofing/contact-service/internal/notify"
	"github.com/vistaroofing/contact-service/internal/observability/metrics"
	"github.com/vistaroofing/contact-service/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting contact-service API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	sender := buildSender(ctx, cfg, logger)

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize submission store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	intakeMetrics := metrics.NewIntakeMetrics(nil)

	intakeHandler := intake.NewHandler(store, sender, intake.Config{
		Recipient:     cfg.RecipientEmail,
		FallbackPhone: cfg.FallbackPhone,
	}, intakeMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		IntakeHandler:      intakeHandler,
		AdminToken:         cfg.AdminToken,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
		StaticDir:          cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildSender picks the mail transport from config. "auto" takes the first
// configured transport in order: SendGrid, SMTP, SES; without credentials the
// stub sender keeps the pipeline alive in development.
func buildSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	sendgridSender := func() notify.EmailSender {
		s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if s == nil {
			return nil
		}
		return s
	}
	smtpSender := func() notify.EmailSender {
		s := notify.NewSMTPSender(notify.SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUsername,
			Password:  cfg.SMTPPassword,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if s == nil {
			return nil
		}
		return s
	}
	sesSender := func() notify.EmailSender {
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			return nil
		}
		s := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if s == nil {
			return nil
		}
		return s
	}

	switch cfg.MailProvider {
	case "sendgrid":
		if s := sendgridSender(); s != nil {
			return s
		}
	case "smtp":
		if s := smtpSender(); s != nil {
			return s
		}
	case "ses":
		if s := sesSender(); s != nil {
			return s
		}
	case "stub":
		// fall through to the stub below
	default: // auto
		if s := sendgridSender(); s != nil {
			logger.Info("using sendgrid mail transport")
			return s
		}
		if s := smtpSender(); s != nil {
			logger.Info("using smtp mail transport")
			return s
		}
	}

	logger.Warn("no mail transport configured, using stub sender")
	return notify.NewStubEmailSender(logger)
}

// buildStore selects Postgres when DATABASE_URL is set, otherwise the
// append-only file log.
func buildStore(ctx context.Context, cfg *appconfig.Config) (intake.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		return intake.NewPostgresStore(pool), pool.Close, nil
	}
	return intake.NewFileStore(cfg.LogDir), func() {}, nil
}
