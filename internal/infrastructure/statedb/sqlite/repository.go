// Package sqlite provides a SQLite implementation of the StateBackend interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/bg3-checklist/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.StateBackend using SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository opens the SQLite database and ensures the schema exists.
func NewRepository(ctx context.Context, cfg config.StateConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Named blobs of client state (completed items, hidden items, active builds)
	CREATE TABLE IF NOT EXISTS state_blobs (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Load returns the blob stored under key.
func (r *Repository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT data FROM state_blobs WHERE name = ?`

	var data string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading state %s: %w", key, err)
	}
	return []byte(data), true, nil
}

// Save replaces the blob stored under key.
func (r *Repository) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO state_blobs (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, key, string(data), timeNow())
	if err != nil {
		return fmt.Errorf("saving state %s: %w", key, err)
	}
	return nil
}
