package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 500
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	writeMu sync.Mutex // Serializes inserts to prevent SQLITE_BUSY
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS transcripts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		outcome TEXT NOT NULL,
		language TEXT NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_transcripts_run ON transcripts(run_id);
	CREATE INDEX IF NOT EXISTS idx_transcripts_created ON transcripts(created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveTurn appends one completed turn.
// Implements retry logic with exponential backoff to handle SQLITE_BUSY errors.
func (s *SQLiteStore) SaveTurn(ctx context.Context, rec *Record) error {
	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		err := s.saveTurnOnce(ctx, rec)
		if err == nil {
			return nil
		}

		if isSQLiteConflict(err) {
			if i < maxRetries-1 {
				delay := baseDelay * time.Duration(1<<i) // exponential backoff: 100ms, 200ms, 400ms
				slog.Debug("SaveTurn failed with SQLITE_BUSY, retrying",
					"run_id", rec.RunID,
					"attempt", i+1,
					"delay", delay)
				time.Sleep(delay)
				continue
			}
		}

		// Non-retryable error or max retries exceeded
		return fmt.Errorf("save turn %s after %d attempts: %w", rec.RunID, i+1, err)
	}

	return nil
}

// saveTurnOnce performs a single insert attempt.
func (s *SQLiteStore) saveTurnOnce(ctx context.Context, rec *Record) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO transcripts (run_id, message, response, outcome, language, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		rec.RunID, rec.Message, rec.Response,
		rec.Outcome, rec.Language, rec.DurationMs,
		createdAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("turn insert id: %w", err)
	}
	rec.ID = id
	rec.CreatedAt = time.Unix(createdAt.Unix(), 0)

	return nil
}

// Recent returns up to limit turns, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	query := `
		SELECT id, run_id, message, response, outcome, language, duration_ms, created_at
		FROM transcripts ORDER BY id DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent turns: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close recent turns rows", "error", closeErr)
		}
	}()

	var records []*Record
	for rows.Next() {
		var rec Record
		var createdAt int64

		if err := rows.Scan(
			&rec.ID, &rec.RunID, &rec.Message, &rec.Response,
			&rec.Outcome, &rec.Language, &rec.DurationMs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan turn row: %w", err)
		}

		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent turns: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// isSQLiteConflict reports whether err is a SQLITE_BUSY or "database is
// locked" concurrency error that warrants a retry.
func isSQLiteConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
