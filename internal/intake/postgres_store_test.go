package intake

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sub := sampleSubmission("pg-1")
	mock.ExpectExec("INSERT INTO submissions").
		WithArgs(sub.ID, sub.Name, sub.Email, sub.Phone, sub.Service, sub.Location,
			sub.Message, sub.SubmittedAt, sub.IPAddress, sub.UserAgent, sub.EmailSent).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	require.NoError(t, store.Append(context.Background(), sub))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendAssignsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sub := sampleSubmission("")
	sub.ID = ""
	mock.ExpectExec("INSERT INTO submissions").
		WithArgs(pgxmock.AnyArg(), sub.Name, sub.Email, sub.Phone, sub.Service, sub.Location,
			sub.Message, sub.SubmittedAt, sub.IPAddress, sub.UserAgent, sub.EmailSent).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	require.NoError(t, store.Append(context.Background(), sub))
	require.NotEmpty(t, sub.ID, "Append must assign an ID when missing")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	submittedAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "name", "email", "phone", "service", "location", "message",
		"submitted_at", "ip_address", "user_agent", "email_sent",
	}).
		AddRow("id-1", "Jane Doe", "jane@example.com", "", "Roof Repair", "",
			"Leak in attic", submittedAt, "192.0.2.1", "test-agent/1.0", true).
		AddRow("id-2", "John Roe", "john@example.com", "4352168746", "", "",
			"Missing shingles", submittedAt.Add(time.Minute), "192.0.2.2", "Unknown", false)

	mock.ExpectQuery("SELECT (.+) FROM submissions").
		WithArgs(50, 0).
		WillReturnRows(rows)

	store := NewPostgresStore(mock)
	subs, err := store.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "Jane Doe", subs[0].Name)
	require.True(t, subs[0].EmailSent)
	require.False(t, subs[1].EmailSent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM submissions").
		WithArgs(10, 5).
		WillReturnError(context.DeadlineExceeded)

	store := NewPostgresStore(mock)
	_, err = store.List(context.Background(), 10, 5)
	require.Error(t, err)
}
