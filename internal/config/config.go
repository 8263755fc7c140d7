package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	// Contact form settings
	RecipientEmail string
	FromEmail      string
	FromName       string
	FallbackPhone  string

	// Mail transport: sendgrid, ses, smtp or stub
	MailProvider string

	SendGridAPIKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Submission log store
	DatabaseURL string
	LogDir      string

	// Static site assets; empty disables serving
	StaticDir string

	AdminToken string

	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int

	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		RecipientEmail: getEnv("CONTACT_RECIPIENT", "mkearl@gmail.com"),
		FromEmail:      getEnv("CONTACT_FROM_EMAIL", "noreply@vistaroofing.org"),
		FromName:       getEnv("CONTACT_FROM_NAME", "Vista Roofing Contact Form"),
		FallbackPhone:  getEnv("CONTACT_FALLBACK_PHONE", "(435) 216-8746"),

		MailProvider: strings.ToLower(strings.TrimSpace(getEnv("MAIL_PROVIDER", "auto"))),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogDir:      getEnv("SUBMISSION_LOG_DIR", "logs"),

		StaticDir: getEnv("STATIC_DIR", ""),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitPerSec:    getEnvAsFloat("RATE_LIMIT_PER_SEC", 1),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 5),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
