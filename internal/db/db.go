// Package db provides database connection handling for the API server.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Pool defaults tuned for a small API instance; override via the returned
// *sql.DB if a deployment needs more.
const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 5 * time.Minute
)

// Open connects to PostgreSQL, configures the connection pool, and verifies
// the connection with a ping. The caller owns the returned handle.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	handle, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	handle.SetMaxOpenConns(DefaultMaxOpenConns)
	handle.SetMaxIdleConns(DefaultMaxIdleConns)
	handle.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return handle, nil
}
