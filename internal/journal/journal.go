// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists a record of conversion attempts in SQLite.
// Journaling is optional; a converter without a journal path skips it
// entirely. Conversions never depend on a journal write succeeding.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded conversion attempt.
type Entry struct {
	CreatedAt   time.Time
	From        string
	To          string
	ResultMode  string // "stdout" or "file"
	ExitCode    int
	Duration    time.Duration
	CommandLine string
	Error       string // empty on success
}

// Journal manages the conversion-history SQLite database.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return j, nil
}

// Close releases the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) createSchema() error {
	const schema = `CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		from_format TEXT,
		to_format TEXT,
		result_mode TEXT NOT NULL,
		exit_code INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		command_line TEXT NOT NULL,
		error TEXT
	)`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one entry. A zero CreatedAt is filled with the current
// time.
func (j *Journal) Record(e Entry) error {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := j.db.Exec(
		`INSERT INTO conversions
			(created_at, from_format, to_format, result_mode, exit_code, duration_ms, command_line, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		created.Format(time.RFC3339Nano),
		e.From, e.To, e.ResultMode, e.ExitCode,
		e.Duration.Milliseconds(), e.CommandLine, e.Error,
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT created_at, from_format, to_format, result_mode, exit_code, duration_ms, command_line, error
		 FROM conversions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		var durationMS int64
		if err := rows.Scan(&created, &e.From, &e.To, &e.ResultMode,
			&e.ExitCode, &durationMS, &e.CommandLine, &e.Error); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = ts
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal rows: %w", err)
	}
	return entries, nil
}
