// File: internal/history/store.go
// Brief: SQLite-backed record of solved answers.

// Package history keeps a local SQLite log of every answer the CLI printed,
// so earlier runs can be listed and compared.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/aoc/internal/runner"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT    NOT NULL,
	day         INTEGER NOT NULL,
	part        INTEGER NOT NULL,
	label       TEXT    NOT NULL,
	value       TEXT    NOT NULL,
	elapsed_ns  INTEGER NOT NULL,
	sample      INTEGER NOT NULL DEFAULT 0,
	recorded_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_day ON runs(day, recorded_at);
`

// Store is an open history database.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Entry is one stored answer.
type Entry struct {
	RunID      string
	Day        int
	Part       int
	Label      string
	Value      string
	Elapsed    time.Duration
	Sample     bool
	RecordedAt time.Time
}

// Filter narrows List results. Zero values mean no restriction.
type Filter struct {
	Day   int
	Limit int
}

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("history db path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores every part of results under runID in one transaction.
func (s *Store) Record(ctx context.Context, runID string, results []runner.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO runs (run_id, day, part, label, value, elapsed_ns, sample, recorded_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare history insert: %w", err)
	}
	defer stmt.Close()
	at := s.now().UTC().UnixNano()
	for _, res := range results {
		sample := 0
		if res.Sample {
			sample = 1
		}
		for _, part := range res.Parts {
			if _, err := stmt.ExecContext(ctx, runID, res.Day, part.Part, part.Label, part.Value, part.Elapsed.Nanoseconds(), sample, at); err != nil {
				return fmt.Errorf("record day %d part %d: %w", res.Day, part.Part, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	return nil
}

// List returns stored answers, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	query := `SELECT run_id, day, part, label, value, elapsed_ns, sample, recorded_at FROM runs`
	var args []any
	if f.Day > 0 {
		query += ` WHERE day = ?`
		args = append(args, f.Day)
	}
	query += ` ORDER BY recorded_at DESC, id DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var (
			e         Entry
			elapsedNS int64
			sample    int
			at        int64
		)
		if err := rows.Scan(&e.RunID, &e.Day, &e.Part, &e.Label, &e.Value, &elapsedNS, &sample, &at); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Elapsed = time.Duration(elapsedNS)
		e.Sample = sample != 0
		e.RecordedAt = time.Unix(0, at).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
