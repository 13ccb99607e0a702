// Package journal keeps a local SQLite audit trail of every mutating call
// sent to the admin API: which operation, against which record, and whether
// the server accepted it. The journal never holds entity state.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Schema DDL for the journal table.
const createJournal = `CREATE TABLE IF NOT EXISTS journal (
    entry_id TEXT PRIMARY KEY,
    recorded_at TEXT NOT NULL,
    request_id TEXT NOT NULL,
    operation TEXT NOT NULL,
    endpoint TEXT NOT NULL,
    entity_id TEXT NOT NULL,
    ok INTEGER NOT NULL,
    message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_journal_recorded_at ON journal(recorded_at);`

// ErrClosed is returned by operations on a closed Journal.
var ErrClosed = errors.New("journal is closed")

// Entry is one journaled gateway call.
type Entry struct {
	EntryID    string    `json:"entry_id"`
	RecordedAt time.Time `json:"recorded_at"`
	RequestID  string    `json:"request_id"`
	Operation  string    `json:"operation"`
	Endpoint   string    `json:"endpoint"`
	EntityID   string    `json:"entity_id"`
	OK         bool      `json:"ok"`
	Message    string    `json:"message"`
}

// Journal is a SQLite-backed audit log. It is safe for concurrent use.
type Journal struct {
	mu  sync.Mutex
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(createJournal); err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &Journal{db: db, now: time.Now}, nil
}

// Record appends e to the journal. EntryID and RecordedAt are filled in when
// empty.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return ErrClosed
	}
	if e.EntryID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate entry id: %w", err)
		}
		e.EntryID = id.String()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = j.now()
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO journal (entry_id, recorded_at, request_id, operation, endpoint, entity_id, ok, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EntryID, e.RecordedAt.UTC().Format(time.RFC3339Nano), e.RequestID,
		e.Operation, e.Endpoint, e.EntityID, boolToInt(e.OK), e.Message)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. A limit of zero or
// less returns every entry.
func (j *Journal) List(ctx context.Context, limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil, ErrClosed
	}
	query := `SELECT entry_id, recorded_at, request_id, operation, endpoint, entity_id, ok, message
		FROM journal ORDER BY recorded_at DESC, entry_id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			recordedAt string
			ok         int
		)
		if err := rows.Scan(&e.EntryID, &recordedAt, &e.RequestID, &e.Operation,
			&e.Endpoint, &e.EntityID, &ok, &e.Message); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at: %w", err)
		}
		e.OK = ok != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database. Idempotent.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
