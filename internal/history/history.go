// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of completed runs in a local SQLite
// database so past settings and outcomes can be reviewed.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at     TIMESTAMP NOT NULL,
	input          TEXT NOT NULL,
	output         TEXT NOT NULL,
	total_pages    INTEGER NOT NULL,
	pages_emitted  INTEGER NOT NULL,
	pages_skipped  INTEGER NOT NULL,
	requested_mode TEXT NOT NULL,
	effective_mode TEXT NOT NULL,
	duration_ms    INTEGER NOT NULL,
	output_size    INTEGER NOT NULL,
	warnings       TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Entry is one recorded run.
type Entry struct {
	ID            int64
	StartedAt     time.Time
	Input         string
	Output        string
	TotalPages    int
	PagesEmitted  int
	PagesSkipped  int
	RequestedMode string
	EffectiveMode string
	Duration      time.Duration
	OutputSize    int64
	Warnings      []string
}

// Store wraps the SQLite database holding the run log.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user history database location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "pdf-works", "history.db"), nil
}

// Open opens or creates the history database at path, applying the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one completed run to the log.
func (s *Store) Record(startedAt time.Time, sum *types.RunSummary) error {
	warnings, err := json.Marshal(sum.Warnings)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO runs (started_at, input, output, total_pages, pages_emitted,
			pages_skipped, requested_mode, effective_mode, duration_ms, output_size, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		startedAt.UTC(), sum.Input, sum.Output, sum.TotalPages, sum.PagesEmitted,
		sum.PagesSkipped, string(sum.RequestedMode), string(sum.EffectiveMode),
		sum.Duration.Milliseconds(), sum.OutputSize, string(warnings))
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, started_at, input, output, total_pages, pages_emitted,
			pages_skipped, requested_mode, effective_mode, duration_ms, output_size, warnings
		FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMS int64
		var warnings string
		if err := rows.Scan(&e.ID, &e.StartedAt, &e.Input, &e.Output, &e.TotalPages,
			&e.PagesEmitted, &e.PagesSkipped, &e.RequestedMode, &e.EffectiveMode,
			&durationMS, &e.OutputSize, &warnings); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if err := json.Unmarshal([]byte(warnings), &e.Warnings); err != nil {
			e.Warnings = nil
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
