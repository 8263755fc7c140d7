package intake

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LogFileName is the submission log artifact under the configured directory.
const LogFileName = "contact_submissions.log"

// FileStore appends submission records as JSON Lines to a single log file.
// The format is append-only on purpose: each record is one O_APPEND write, so
// concurrent handlers never read-modify-write each other's tail and existing
// records are never rewritten or reordered.
type FileStore struct {
	mu   sync.Mutex
	dir  string
	path string
}

// NewFileStore creates a store rooted at dir. The directory is created lazily
// on first append so a missing logs directory never blocks startup.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:  dir,
		path: filepath.Join(dir, LogFileName),
	}
}

// Path returns the log file location.
func (s *FileStore) Path() string {
	return s.path
}

// Append writes one record as a single JSON line.
func (s *FileStore) Append(ctx context.Context, sub *Submission) error {
	line, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("intake: marshal submission: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("intake: create log directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("intake: open submission log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("intake: append submission: %w", err)
	}
	return nil
}

// List reads records back in append order. Lines that fail to parse are
// skipped rather than failing the whole read.
func (s *FileStore) List(ctx context.Context, limit, offset int) ([]*Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("intake: open submission log: %w", err)
	}
	defer f.Close()

	var out []*Submission
	seen := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var sub Submission
		if err := json.Unmarshal(scanner.Bytes(), &sub); err != nil {
			continue
		}
		if seen < offset {
			seen++
			continue
		}
		out = append(out, &sub)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("intake: read submission log: %w", err)
	}
	return out, nil
}

var _ Store = (*FileStore)(nil)
