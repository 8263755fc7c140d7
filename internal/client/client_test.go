package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func validTestForm() Form {
	return Form{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Leak in attic",
		Consent: true,
	}
}

func TestSubmit_Success(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/contact" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = r.ParseForm()
		gotForm = map[string]string{
			"name":    r.PostFormValue("name"),
			"email":   r.PostFormValue("email"),
			"consent": r.PostFormValue("consent"),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Thank you!"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	outcome, err := c.Submit(context.Background(), validTestForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Success || outcome.Status != http.StatusOK {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if outcome.Message != "Thank you!" {
		t.Errorf("unexpected message: %q", outcome.Message)
	}
	if gotForm["name"] != "Jane Doe" || gotForm["consent"] != "on" {
		t.Errorf("unexpected form payload: %v", gotForm)
	}
}

func TestSubmit_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Email is required"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	outcome, err := c.Submit(context.Background(), validTestForm())
	if err != nil {
		t.Fatalf("structured rejection must not be a transport error: %v", err)
	}
	if outcome.Success {
		t.Error("expected failure outcome")
	}
	if outcome.Status != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", outcome.Status)
	}
}

func TestSubmit_PlainTextRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL)
	outcome, err := c.Submit(context.Background(), validTestForm())
	if err != nil {
		t.Fatalf("non-JSON rejection must not be a transport error: %v", err)
	}
	if outcome.Success {
		t.Error("expected failure outcome")
	}
	if outcome.Status != http.StatusTooManyRequests {
		t.Errorf("unexpected status: %d", outcome.Status)
	}
	if outcome.Message == "" {
		t.Error("expected a user-facing failure message")
	}
}

func TestSubmit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL)
	if _, err := c.Submit(context.Background(), validTestForm()); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestSubmit_LocalValidationBlocksRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := New(srv.URL)
	form := validTestForm()
	form.Email = "not-an-email"
	form.Consent = false

	_, err := c.Submit(context.Background(), form)
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %+v", verr.Fields)
	}
	if requests != 0 {
		t.Error("invalid form must not reach the network")
	}
}

func TestSubmit_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := c.Submit(context.Background(), validTestForm()); err != nil {
			t.Errorf("first submission failed: %v", err)
		}
	}()

	// Give the first submission time to acquire the in-flight guard.
	time.Sleep(50 * time.Millisecond)
	if _, err := c.Submit(context.Background(), validTestForm()); err != ErrInFlight {
		t.Errorf("expected ErrInFlight, got %v", err)
	}

	close(release)
	wg.Wait()

	// The guard must be released after completion.
	if _, err := c.Submit(context.Background(), validTestForm()); err != nil {
		t.Errorf("submission after completion failed: %v", err)
	}
}
