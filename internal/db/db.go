// Package db provides storage for accepted contact submissions.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/pressly/goose/v3"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// DefaultListLimit caps ListSubmissions when the caller passes a non-positive limit.
const DefaultListLimit = 100

// Postgres wraps a PostgreSQL connection pool
type Postgres struct {
	pool        *pgxpool.Pool
	databaseURL string
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool, databaseURL: databaseURL}, nil
}

// Close closes the connection pool
func (db *Postgres) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate applies all pending migrations. goose needs database/sql, so a
// separate short-lived connection is opened through the pgx stdlib driver.
func (db *Postgres) Migrate(ctx context.Context) error {
	sqlDB, err := sql.Open("pgx", db.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	return migrate(ctx, goose.DialectPostgres, sqlDB)
}

func migrate(ctx context.Context, dialect goose.Dialect, sqlDB *sql.DB) error {
	migrations, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SaveSubmission inserts an accepted contact submission
func (db *Postgres) SaveSubmission(ctx context.Context, sub types.StoredSubmission) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO contact_submissions (id, name, email, message, ip_hash, received_at)
		 VALUES (@id, @name, @email, @message, @ip_hash, @received_at)`,
		pgx.NamedArgs{
			"id":          sub.ID,
			"name":        sub.Name,
			"email":       sub.Email,
			"message":     sub.Message,
			"ip_hash":     sub.IPHash,
			"received_at": sub.ReceivedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to save submission %s: %w", sub.ID, err)
	}
	return nil
}

// ListSubmissions returns the most recent submissions, newest first
func (db *Postgres) ListSubmissions(ctx context.Context, limit int) ([]types.StoredSubmission, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, message, ip_hash, received_at
		 FROM contact_submissions
		 ORDER BY received_at DESC, id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	subs := []types.StoredSubmission{}
	for rows.Next() {
		var s types.StoredSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.IPHash, &s.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		s.ReceivedAt = s.ReceivedAt.UTC()
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}
