package notice

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestShow_DisplaysMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Show("Thank you!", Success)

	if !strings.Contains(buf.String(), "Thank you!") {
		t.Errorf("output missing message: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[success]") {
		t.Errorf("output missing kind accent: %q", buf.String())
	}
	cur := p.Current()
	if cur == nil || cur.Kind != Success {
		t.Errorf("unexpected current notification: %+v", cur)
	}
}

func TestShow_ReplacesPrevious(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Show("first", Info)
	p.Show("second", Error)

	cur := p.Current()
	if cur == nil {
		t.Fatal("expected a visible notification")
	}
	if cur.Message != "second" || cur.Kind != Error {
		t.Errorf("second Show must replace the first, got %+v", cur)
	}
}

func TestDismiss(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Show("going away", Warning)
	p.Dismiss()

	if p.Current() != nil {
		t.Error("expected no notification after Dismiss")
	}
}

func TestAutoDismiss(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, WithTTL(20*time.Millisecond))

	p.Show("short-lived", Info)

	deadline := time.Now().Add(time.Second)
	for p.Current() != nil {
		if time.Now().After(deadline) {
			t.Fatal("notification was not auto-dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAutoDismiss_DoesNotRemoveNewerNotification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, WithTTL(20*time.Millisecond))

	p.Show("old", Info)
	p.Show("new", Success)

	// Wait past the first notification's TTL; the second Show reset it.
	time.Sleep(10 * time.Millisecond)
	if cur := p.Current(); cur == nil || cur.Message != "new" {
		t.Errorf("a stale timer must not clear a newer notification, got %+v", cur)
	}
}

func TestZeroTTLDisablesAutoDismiss(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, WithTTL(0))

	p.Show("sticky", Info)
	time.Sleep(30 * time.Millisecond)

	if p.Current() == nil {
		t.Error("zero TTL must disable auto-dismissal")
	}
}
