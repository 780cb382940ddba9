//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/foundationagents/manus-webui/internal/agent"
	"github.com/foundationagents/manus-webui/internal/config"
	"github.com/foundationagents/manus-webui/internal/i18n"
	"github.com/foundationagents/manus-webui/internal/session"
	"github.com/foundationagents/manus-webui/internal/store"
	"github.com/foundationagents/manus-webui/internal/translog"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"foo": "bar"}

	JSON(w, http.StatusOK, data)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if got["foo"] != "bar" {
		t.Errorf("Expected foo=bar, got %v", got["foo"])
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusBadRequest, "bad input")

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got["error"] != "bad input" {
		t.Errorf("Expected error=bad input, got %v", got["error"])
	}
}

type stubAgent struct {
	result string
	err    error
	gate   chan struct{}
}

func (a *stubAgent) Run(ctx context.Context, _ agent.Request) (string, error) {
	if a.gate != nil {
		select {
		case <-a.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return a.result, a.err
}

func (a *stubAgent) Health(context.Context) (string, error) { return "healthy", nil }
func (a *stubAgent) Cleanup(context.Context) error          { return nil }

func staticFactory(a agent.Agent) agent.Factory {
	return func(context.Context) (agent.Agent, error) { return a, nil }
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	frames []any
}

func (b *fakeBroadcaster) Broadcast(_ context.Context, v any) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frames = append(b.frames, v)
	return 1
}

func (b *fakeBroadcaster) sent() []any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]any(nil), b.frames...)
}

type testEnv struct {
	handler    *Handler
	controller *session.Controller
	repo       store.Repository
	tlog       *translog.Logger
	broadcast  *fakeBroadcaster
}

func newTestEnv(t *testing.T, factory agent.Factory) *testEnv {
	t.Helper()

	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "webui.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return newEnv(t, factory, repo)
}

// newMemoryEnv builds the DB_ENABLED=false wiring: no durable archive,
// recent transcripts come from the in-memory ring.
func newMemoryEnv(t *testing.T, factory agent.Factory) *testEnv {
	t.Helper()
	return newEnv(t, factory, nil)
}

func newEnv(t *testing.T, factory agent.Factory, repo store.Repository) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	controller, err := session.NewController(session.Config{Factory: factory}, logger)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	tlog, err := translog.New(translog.Config{}, logger)
	if err != nil {
		t.Fatalf("translog.New failed: %v", err)
	}
	t.Cleanup(func() { _ = tlog.Close() })

	broadcast := &fakeBroadcaster{}
	settings := config.NewSettingsSource(filepath.Join(t.TempDir(), "config.toml"), logger)
	recorder := translog.NewRecorder(tlog, repo, logger)
	handler := NewHandler(controller, settings, repo, recorder, broadcast, logger)

	return &testEnv{
		handler:    handler,
		controller: controller,
		repo:       repo,
		tlog:       tlog,
		broadcast:  broadcast,
	}
}

func (e *testEnv) server(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	e.handler.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, status int) map[string]any {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != status {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, status)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s response: %v", url, err)
	}
	return body
}

func postJSON(t *testing.T, url string, payload any, status int) map[string]any {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != status {
		t.Fatalf("POST %s status = %d, want %d", url, resp.StatusCode, status)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s response: %v", url, err)
	}
	return body
}

func labelStrings(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	strs, ok := body["strings"].(map[string]any)
	if !ok {
		t.Fatalf("labels response has no strings map: %v", body)
	}
	return strs
}

func TestGetLabelsDefaultLanguage(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/labels", http.StatusOK)

	if body["language"] != i18n.DefaultLanguage {
		t.Errorf("language = %v, want %q", body["language"], i18n.DefaultLanguage)
	}

	strs := labelStrings(t, body)
	if got, want := strs["title"], i18n.Lookup(i18n.LangJapanese, "title"); got != want {
		t.Errorf("title = %v, want %v", got, want)
	}

	content, _ := strs["config_content"].(string)
	if strings.Contains(content, "{model}") || strings.Contains(content, "{workspace}") {
		t.Errorf("config_content not interpolated: %q", content)
	}
	if !strings.Contains(content, "Not configured") {
		t.Errorf("config_content missing default model label: %q", content)
	}

	languages, _ := body["languages"].([]any)
	if len(languages) != 2 {
		t.Errorf("languages count = %d, want 2", len(languages))
	}
	examples, _ := body["examples"].([]any)
	if len(examples) == 0 {
		t.Error("expected example prompts")
	}
}

func TestGetLabelsExplicitLanguage(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/labels?lang=en", http.StatusOK)
	if body["language"] != i18n.LangEnglish {
		t.Errorf("language = %v, want en", body["language"])
	}
	strs := labelStrings(t, body)
	if got, want := strs["title"], i18n.Lookup(i18n.LangEnglish, "title"); got != want {
		t.Errorf("title = %v, want %v", got, want)
	}

	// The override must not switch the session language.
	if got := env.controller.Language(); got != i18n.DefaultLanguage {
		t.Errorf("controller language = %q, want %q", got, i18n.DefaultLanguage)
	}
}

func TestGetLabelsUnsupportedLanguage(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/labels?lang=xx", http.StatusBadRequest)
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestSetLanguageSwitches(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := postJSON(t, srv.URL+"/api/language", map[string]string{"language": "en"}, http.StatusOK)

	if body["language"] != "en" {
		t.Errorf("response language = %v, want en", body["language"])
	}
	if got := env.controller.Language(); got != i18n.LangEnglish {
		t.Errorf("controller language = %q, want en", got)
	}

	labels, ok := body["labels"].(map[string]any)
	if !ok {
		t.Fatalf("response has no labels: %v", body)
	}
	if labels["language"] != "en" {
		t.Errorf("labels language = %v, want en", labels["language"])
	}

	if frames := env.broadcast.sent(); len(frames) != 1 {
		t.Errorf("broadcast frames = %d, want 1", len(frames))
	} else if frame, ok := frames[0].(labelsFrame); !ok || frame.Type != "labels" {
		t.Errorf("broadcast frame = %#v, want a labels frame", frames[0])
	}
}

func TestSetLanguageRoundTripRestoresLabels(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	fetch := func() string {
		t.Helper()
		resp, err := http.Get(srv.URL + "/api/labels")
		if err != nil {
			t.Fatalf("GET labels failed: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read labels body: %v", err)
		}
		return string(data)
	}

	before := fetch()
	postJSON(t, srv.URL+"/api/language", map[string]string{"language": "en"}, http.StatusOK)
	postJSON(t, srv.URL+"/api/language", map[string]string{"language": "ja"}, http.StatusOK)
	after := fetch()

	if before != after {
		t.Errorf("labels changed after a language round trip:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestSetLanguageUnsupported(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	postJSON(t, srv.URL+"/api/language", map[string]string{"language": "fr"}, http.StatusBadRequest)

	if got := env.controller.Language(); got != i18n.DefaultLanguage {
		t.Errorf("controller language = %q, want unchanged %q", got, i18n.DefaultLanguage)
	}
	if frames := env.broadcast.sent(); len(frames) != 0 {
		t.Errorf("broadcast frames = %d, want 0", len(frames))
	}
}

func TestTranscripts(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	ctx := context.Background()
	for _, runID := range []string{"run-1", "run-2", "run-3"} {
		rec := &store.Record{RunID: runID, Message: "m", Response: "r", Outcome: "completed", Language: "ja"}
		if err := env.repo.SaveTurn(ctx, rec); err != nil {
			t.Fatalf("SaveTurn failed: %v", err)
		}
	}

	body := getJSON(t, srv.URL+"/api/transcripts?limit=2", http.StatusOK)
	records, _ := body["transcripts"].([]any)
	if len(records) != 2 {
		t.Fatalf("transcripts count = %d, want 2", len(records))
	}
	first, _ := records[0].(map[string]any)
	if first["run_id"] != "run-3" {
		t.Errorf("first transcript run_id = %v, want run-3 (newest first)", first["run_id"])
	}

	getJSON(t, srv.URL+"/api/transcripts?limit=nope", http.StatusBadRequest)
}

func TestTranscriptsEmpty(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/transcripts", http.StatusOK)
	if count, _ := body["count"].(float64); count != 0 {
		t.Errorf("count = %v, want 0", body["count"])
	}
	if body["source"] != "archive" {
		t.Errorf("source = %v, want archive", body["source"])
	}
}

func TestTranscriptsFromMemoryWithoutArchive(t *testing.T) {
	env := newMemoryEnv(t, staticFactory(&stubAgent{result: "kept in memory"}))
	srv := env.server(t)

	postChat(t, srv.URL, "remember me")

	body := getJSON(t, srv.URL+"/api/transcripts", http.StatusOK)
	if body["source"] != "memory" {
		t.Errorf("source = %v, want memory", body["source"])
	}
	events, _ := body["transcripts"].([]any)
	if len(events) != 2 {
		t.Fatalf("event count = %d, want 2", len(events))
	}
	newest, _ := events[0].(map[string]any)
	if newest["event_type"] != translog.EventAgentResponse {
		t.Errorf("newest event_type = %v, want %v", newest["event_type"], translog.EventAgentResponse)
	}
	if content, _ := newest["content"].(string); !strings.Contains(content, "kept in memory") {
		t.Errorf("content = %q, want the agent result", content)
	}
}

func TestHealthHealthy(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/health", http.StatusOK)

	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	checks, _ := body["checks"].(map[string]any)
	if checks["database"] != "ok" {
		t.Errorf("database check = %v, want ok", checks["database"])
	}
	if checks["agent"] != "uninitialized" {
		t.Errorf("agent check = %v, want uninitialized before first use", checks["agent"])
	}
	if busy, _ := body["busy"].(bool); busy {
		t.Error("busy = true, want false")
	}
}

func TestHealthDegradedWithoutDatabase(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	if err := env.repo.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/health", http.StatusServiceUnavailable)

	if body["status"] != "degraded" {
		t.Errorf("status = %v, want degraded", body["status"])
	}
	checks, _ := body["checks"].(map[string]any)
	if checks["database"] != "unreachable" {
		t.Errorf("database check = %v, want unreachable", checks["database"])
	}
}

func TestHealthArchiveDisabled(t *testing.T) {
	env := newMemoryEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	body := getJSON(t, srv.URL+"/api/health", http.StatusOK)

	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	checks, _ := body["checks"].(map[string]any)
	if checks["database"] != "disabled" {
		t.Errorf("database check = %v, want disabled", checks["database"])
	}
}
