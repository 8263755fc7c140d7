package intake

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the store needs; tests substitute pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore persists submissions in the relational database. Inserts are
// naturally append-only, which satisfies the concurrent-writer guarantee.
type PostgresStore struct {
	db DB
}

// NewPostgresStore initializes a store backed by pgx.
func NewPostgresStore(db DB) *PostgresStore {
	if db == nil {
		panic("intake: pgx pool required")
	}
	return &PostgresStore{db: db}
}

// Append inserts one row.
func (s *PostgresStore) Append(ctx context.Context, sub *Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	query := `
		INSERT INTO submissions (id, name, email, phone, service, location, message, submitted_at, ip_address, user_agent, email_sent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := s.db.Exec(ctx, query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Service,
		sub.Location,
		sub.Message,
		sub.SubmittedAt,
		sub.IPAddress,
		sub.UserAgent,
		sub.EmailSent,
	); err != nil {
		return fmt.Errorf("intake: insert submission: %w", err)
	}
	return nil
}

// List fetches rows in submission order.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, name, email, phone, service, location, message, submitted_at, ip_address, user_agent, email_sent
		FROM submissions
		ORDER BY submitted_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("intake: select submissions: %w", err)
	}
	defer rows.Close()

	var out []*Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&sub.Service,
			&sub.Location,
			&sub.Message,
			&sub.SubmittedAt,
			&sub.IPAddress,
			&sub.UserAgent,
			&sub.EmailSent,
		); err != nil {
			return nil, fmt.Errorf("intake: scan submission: %w", err)
		}
		out = append(out, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("intake: iterate submissions: %w", err)
	}
	return out, nil
}

var _ Store = (*PostgresStore)(nil)
