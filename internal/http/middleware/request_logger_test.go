package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vistaroofing/contact-service/pkg/logging"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("nope"))
	})

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()

	RequestLogger(logger)(handler).ServeHTTP(rec, req)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log records, got %d: %s", len(lines), out)
	}
	if !strings.Contains(lines[0], "request started") || !strings.Contains(lines[0], "/contact") {
		t.Errorf("unexpected start record: %s", lines[0])
	}
	if !strings.Contains(lines[0], "test-agent") {
		t.Errorf("start record missing user agent: %s", lines[0])
	}
	if !strings.Contains(lines[1], "request completed") || !strings.Contains(lines[1], `"status":400`) {
		t.Errorf("unexpected completion record: %s", lines[1])
	}
}

func TestRequestLoggerNilLoggerDoesNotPanic(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	RequestLogger(nil)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
