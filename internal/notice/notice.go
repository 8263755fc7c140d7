// Package notice renders transient outcome notifications on a terminal, the
// counterpart of the site's floating notification banner.
package notice

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Kind selects the accent a notification is rendered with.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// DefaultTTL is how long a notification stays up before auto-dismissal.
const DefaultTTL = 5 * time.Second

// Notification is one visible message.
type Notification struct {
	Message string
	Kind    Kind
}

// Presenter shows at most one notification at a time. Showing a new one
// replaces whatever is currently visible; after the TTL it dismisses itself
// unless dismissed earlier.
type Presenter struct {
	mu      sync.Mutex
	w       io.Writer
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithTTL overrides the auto-dismiss delay. Zero or negative disables
// auto-dismissal.
func WithTTL(ttl time.Duration) Option {
	return func(p *Presenter) {
		p.ttl = ttl
	}
}

// NewPresenter creates a presenter writing to w.
func NewPresenter(w io.Writer, opts ...Option) *Presenter {
	p := &Presenter{
		w:   w,
		ttl: DefaultTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Show displays a notification, replacing any currently visible one.
func (p *Presenter) Show(message string, kind Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	n := &Notification{Message: message, Kind: kind}
	p.current = n
	fmt.Fprintf(p.w, "%s[%s]%s %s\n", accent(kind), kind, accentReset, message)

	if p.ttl > 0 {
		p.timer = time.AfterFunc(p.ttl, func() {
			p.dismissIf(n)
		})
	}
}

// Dismiss removes the current notification, if any.
func (p *Presenter) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearLocked()
}

// Current returns the visible notification, or nil when none is shown.
func (p *Presenter) Current() *Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	copied := *p.current
	return &copied
}

// dismissIf clears the display only when n is still the visible
// notification; a newer Show must not be taken down by an old timer.
func (p *Presenter) dismissIf(n *Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == n {
		p.clearLocked()
	}
}

func (p *Presenter) clearLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.current = nil
}

const accentReset = "\x1b[0m"

func accent(kind Kind) string {
	switch kind {
	case Success:
		return "\x1b[32m" // green
	case Error:
		return "\x1b[31m" // red
	case Warning:
		return "\x1b[33m" // yellow
	default:
		return "\x1b[34m" // blue
	}
}
