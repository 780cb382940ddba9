package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()

	repo, err := NewSQLite(filepath.Join(t.TempDir(), "data", "webui.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func TestSaveTurnRoundtrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	rec := &Record{
		RunID:      "run-1",
		Message:    "日本の首都は？",
		Response:   "東京です。",
		Outcome:    "completed",
		Language:   "ja",
		DurationMs: 1234,
		CreatedAt:  time.Unix(1700000000, 0),
	}
	if err := repo.SaveTurn(ctx, rec); err != nil {
		t.Fatalf("SaveTurn failed: %v", err)
	}
	if rec.ID == 0 {
		t.Error("SaveTurn did not assign an ID")
	}

	records, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.ID != rec.ID {
		t.Errorf("ID = %d, want %d", got.ID, rec.ID)
	}
	if got.RunID != rec.RunID {
		t.Errorf("RunID = %q, want %q", got.RunID, rec.RunID)
	}
	if got.Message != rec.Message {
		t.Errorf("Message = %q, want %q", got.Message, rec.Message)
	}
	if got.Response != rec.Response {
		t.Errorf("Response = %q, want %q", got.Response, rec.Response)
	}
	if got.Outcome != rec.Outcome {
		t.Errorf("Outcome = %q, want %q", got.Outcome, rec.Outcome)
	}
	if got.Language != rec.Language {
		t.Errorf("Language = %q, want %q", got.Language, rec.Language)
	}
	if got.DurationMs != rec.DurationMs {
		t.Errorf("DurationMs = %d, want %d", got.DurationMs, rec.DurationMs)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestSaveTurnAssignsCreatedAt(t *testing.T) {
	repo := newTestStore(t)

	before := time.Now().Add(-time.Second)
	rec := &Record{RunID: "run-ts", Message: "hi", Response: "ok", Outcome: "completed", Language: "en"}
	if err := repo.SaveTurn(context.Background(), rec); err != nil {
		t.Fatalf("SaveTurn failed: %v", err)
	}

	if rec.CreatedAt.IsZero() {
		t.Fatal("SaveTurn left CreatedAt zero")
	}
	if rec.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want no earlier than %v", rec.CreatedAt, before)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		rec := &Record{
			RunID:    fmt.Sprintf("run-%d", i),
			Message:  fmt.Sprintf("message %d", i),
			Response: "done",
			Outcome:  "completed",
			Language: "en",
		}
		if err := repo.SaveTurn(ctx, rec); err != nil {
			t.Fatalf("SaveTurn %d failed: %v", i, err)
		}
	}

	records, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, wantRun := range []string{"run-5", "run-4", "run-3"} {
		if records[i].RunID != wantRun {
			t.Errorf("records[%d].RunID = %q, want %q", i, records[i].RunID, wantRun)
		}
	}
}

func TestRecentDefaultLimit(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < defaultRecentLimit+10; i++ {
		rec := &Record{RunID: "run", Message: "m", Response: "r", Outcome: "completed", Language: "en"}
		if err := repo.SaveTurn(ctx, rec); err != nil {
			t.Fatalf("SaveTurn failed: %v", err)
		}
	}

	records, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != defaultRecentLimit {
		t.Errorf("expected default limit of %d records, got %d", defaultRecentLimit, len(records))
	}
}

func TestRecentEmpty(t *testing.T) {
	repo := newTestStore(t)

	records, err := repo.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestPing(t *testing.T) {
	repo := newTestStore(t)

	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestIsSQLiteConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"busy", errors.New("SQLITE_BUSY: database busy"), true},
		{"locked", errors.New("database is locked (5)"), true},
		{"wrapped busy", fmt.Errorf("insert turn: %w", errors.New("SQLITE_BUSY")), true},
		{"other", errors.New("no such table: transcripts"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSQLiteConflict(tt.err); got != tt.want {
				t.Errorf("isSQLiteConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
