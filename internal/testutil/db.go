// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return db
}

// Entries builds one history entry per line, a second apart, all with
// outcome ok and the first token as command.
func Entries(start time.Time, lines ...string) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(lines))
	for i, line := range lines {
		command, _, _ := strings.Cut(line, " ")
		out[i] = domain.HistoryEntry{
			ID:        uuid.New(),
			Line:      line,
			Command:   command,
			Outcome:   domain.OutcomeOK,
			Duration:  time.Duration(i+1) * time.Millisecond,
			Timestamp: start.Add(time.Duration(i) * time.Second),
		}
	}
	return out
}

// SeedHistory records entries through rec.
func SeedHistory(t *testing.T, rec interface {
	Record(domain.HistoryEntry) error
}, entries []domain.HistoryEntry) {
	t.Helper()
	for _, e := range entries {
		require.NoError(t, rec.Record(e), "failed to seed entry: %+v", e)
	}
}
