package intake

import (
	"context"
	"sync"
)

// Store persists submission records. Append must be safe for concurrent
// callers: two submissions arriving together must both survive.
type Store interface {
	Append(ctx context.Context, sub *Submission) error
	List(ctx context.Context, limit, offset int) ([]*Submission, error)
}

// InMemoryStore keeps records in a slice. Used in tests and as a fallback
// when neither a database nor a log directory is configured.
type InMemoryStore struct {
	mu   sync.RWMutex
	subs []*Submission
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append adds one record.
func (s *InMemoryStore) Append(ctx context.Context, sub *Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sub
	s.subs = append(s.subs, &copied)
	return nil
}

// List returns records in insertion order.
func (s *InMemoryStore) List(ctx context.Context, limit, offset int) ([]*Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.subs) {
		return nil, nil
	}
	end := len(s.subs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]*Submission, 0, end-offset)
	for _, sub := range s.subs[offset:end] {
		copied := *sub
		out = append(out, &copied)
	}
	return out, nil
}

var _ Store = (*InMemoryStore)(nil)
