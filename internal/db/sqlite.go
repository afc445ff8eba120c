package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers "sqlite" driver

	"github.com/yaswanthreddy/portfolio/internal/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL,
    message     TEXT NOT NULL,
    ip_hash     TEXT NOT NULL DEFAULT '',
    received_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_submissions_received_at
    ON contact_submissions (received_at DESC);`

// sqliteTimeLayout has fixed-width fractional seconds so stored timestamps sort lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLite stores submissions in a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer at a time
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	return &SQLite{db: sqlDB}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveSubmission inserts an accepted contact submission.
func (s *SQLite) SaveSubmission(ctx context.Context, sub types.StoredSubmission) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, message, ip_hash, received_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID.String(), sub.Name, sub.Email, sub.Message, sub.IPHash,
		sub.ReceivedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save submission %s: %w", sub.ID, err)
	}
	return nil
}

// ListSubmissions returns the most recent submissions, newest first.
func (s *SQLite) ListSubmissions(ctx context.Context, limit int) ([]types.StoredSubmission, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, ip_hash, received_at
		 FROM contact_submissions
		 ORDER BY received_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	subs := []types.StoredSubmission{}
	for rows.Next() {
		var (
			sub        types.StoredSubmission
			id         string
			receivedAt string
		)
		if err := rows.Scan(&id, &sub.Name, &sub.Email, &sub.Message, &sub.IPHash, &receivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if sub.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid submission id %q: %w", id, err)
		}
		if sub.ReceivedAt, err = time.Parse(sqliteTimeLayout, receivedAt); err != nil {
			return nil, fmt.Errorf("invalid received_at %q: %w", receivedAt, err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}
