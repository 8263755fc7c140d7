package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/vistaroofing/contact-service/internal/http/middleware"
	"github.com/vistaroofing/contact-service/internal/intake"
	"github.com/vistaroofing/contact-service/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger        *logging.Logger
	IntakeHandler *intake.Handler

	AdminToken     string
	MetricsHandler http.Handler

	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int

	// StaticDir, when set, serves the marketing site's assets from disk.
	StaticDir string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// The contact contract promises a JSON 405 body on wrong-method requests.
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(intake.Response{Success: false, Message: "Method not allowed"})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	contact := r.Group(nil)
	if cfg.RateLimitPerSec > 0 {
		contact.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
	}
	contact.Post("/contact", cfg.IntakeHandler.HandleContact)

	r.Route("/admin", func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminToken(cfg.AdminToken))
		admin.Get("/submissions", cfg.IntakeHandler.HandleList)
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.StaticDir != "" {
		// Registered via NotFound so the site assets never shadow API routes:
		// a GET /contact must still hit the method-not-allowed response above.
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		r.NotFound(fs.ServeHTTP)
	}

	return r
}
