// Package store persists completed conversation turns so transcripts
// survive process restarts.
package store

import (
	"context"
	"time"
)

// Record is one archived conversation turn.
type Record struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	Message    string    `json:"message"`
	Response   string    `json:"response"`
	Outcome    string    `json:"outcome"`
	Language   string    `json:"language"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Repository defines the interface for the transcript archive.
type Repository interface {
	// SaveTurn appends one completed turn. On success rec.ID carries the
	// assigned row ID.
	SaveTurn(ctx context.Context, rec *Record) error

	// Recent returns up to limit turns, newest first. A non-positive
	// limit selects the default page size.
	Recent(ctx context.Context, limit int) ([]*Record, error)

	// Ping verifies database connectivity and returns an error if the database is unreachable.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
