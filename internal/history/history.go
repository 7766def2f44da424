// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DatabaseFileName is the attempt-history database inside the quizdeck
// storage directory.
const DatabaseFileName = "history.db"

// =============================================================================
// ATTEMPT TYPE
// =============================================================================

// Attempt is one completed quiz run on this machine.
type Attempt struct {
	ID       string    `json:"id"`
	QuizID   int       `json:"quiz_id"`
	QuizName string    `json:"quiz_name"`
	Scored   int       `json:"scored"`
	Total    int       `json:"total"`
	TakenAt  time.Time `json:"taken_at"`
}

// Percentage returns the attempt score as a percentage, 0 for empty quizzes.
func (a Attempt) Percentage() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Scored) / float64(a.Total) * 100
}

// =============================================================================
// STORE
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id        TEXT PRIMARY KEY,
	quiz_id   INTEGER NOT NULL,
	quiz_name TEXT NOT NULL,
	scored    INTEGER NOT NULL,
	total     INTEGER NOT NULL,
	taken_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_taken_at ON attempts(taken_at DESC);
`

// Store records attempts in a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the attempt history in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite supports one writer at a time; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a completed attempt and returns it with its assigned ID.
func (s *Store) Record(ctx context.Context, quizID int, quizName string, scored, total int) (Attempt, error) {
	attempt := Attempt{
		ID:       uuid.NewString(),
		QuizID:   quizID,
		QuizName: quizName,
		Scored:   scored,
		Total:    total,
		TakenAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, quiz_id, quiz_name, scored, total, taken_at) VALUES (?, ?, ?, ?, ?, ?)`,
		attempt.ID, attempt.QuizID, attempt.QuizName, attempt.Scored, attempt.Total, attempt.TakenAt.Unix(),
	)
	if err != nil {
		return Attempt{}, fmt.Errorf("failed to record attempt: %w", err)
	}
	return attempt, nil
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, quiz_id, quiz_name, scored, total, taken_at FROM attempts ORDER BY taken_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var unix int64
		if err := rows.Scan(&a.ID, &a.QuizID, &a.QuizName, &a.Scored, &a.Total, &unix); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		a.TakenAt = time.Unix(unix, 0).UTC()
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Clear deletes all recorded attempts.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("failed to clear attempts: %w", err)
	}
	return nil
}
