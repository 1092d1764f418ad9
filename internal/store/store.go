// Package store keeps the command history in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/store/migrations"
)

const memoryPath = ":memory:"

// Store wraps a SQLite connection and implements domain.HistoryStore.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path, creating its directory, and runs any
// pending migrations.
func New(path string) (*Store, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing, migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configureSQLite pins a single connection, so an in-memory database is
// not split across connections, and lets a second session wait on locks.
func configureSQLite(db *sql.DB, path string) error {
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	if path == memoryPath {
		return nil
	}
	_, err := db.Exec("PRAGMA journal_mode = WAL")
	return err
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == memoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record appends one entry.
func (s *Store) Record(entry domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO history (id, line, command, outcome_id, duration_us, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID.String(),
		entry.Line,
		entry.Command,
		int(entry.Outcome),
		entry.Duration.Microseconds(),
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, oldest first. A limit of zero or
// less returns nothing.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, line, command, outcome_id, duration_us, timestamp
		FROM history
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(out)
	return out, nil
}

// Count returns the number of recorded entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec("DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e          domain.HistoryEntry
		id         string
		outcomeID  int
		durationUS int64
		ts         string
	)

	if err := rows.Scan(&id, &e.Line, &e.Command, &outcomeID, &durationUS, &ts); err != nil {
		return domain.HistoryEntry{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history id %q: %w", id, err)
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history timestamp %q: %w", ts, err)
	}

	e.ID = parsedID
	e.Outcome = domain.Outcome(outcomeID)
	e.Duration = time.Duration(durationUS) * time.Microsecond
	e.Timestamp = t
	return e, nil
}

var _ domain.HistoryStore = (*Store)(nil)
