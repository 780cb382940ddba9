package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/foundationagents/manus-webui/internal/i18n"
	"github.com/foundationagents/manus-webui/internal/session"
)

type sseEvent struct {
	name string
	data string
}

func parseSSE(body string) []sseEvent {
	var events []sseEvent
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			if rest, ok := strings.CutPrefix(line, "event: "); ok {
				ev.name = rest
			}
			if rest, ok := strings.CutPrefix(line, "data: "); ok {
				ev.data = rest
			}
		}
		events = append(events, ev)
	}
	return events
}

// chatUpdates extracts the update events from an SSE body, skipping
// keepalive pings.
func chatUpdates(t *testing.T, body string) []map[string]any {
	t.Helper()

	var updates []map[string]any
	for _, ev := range parseSSE(body) {
		if ev.name != "update" {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(ev.data), &payload); err != nil {
			t.Fatalf("unmarshal update %q: %v", ev.data, err)
		}
		updates = append(updates, payload)
	}
	return updates
}

func updateResponse(t *testing.T, update map[string]any) string {
	t.Helper()

	history, ok := update["history"].([]any)
	if !ok || len(history) == 0 {
		t.Fatalf("update has no history: %v", update)
	}
	turn, ok := history[len(history)-1].(map[string]any)
	if !ok {
		t.Fatalf("unexpected turn shape: %v", history[len(history)-1])
	}
	resp, _ := turn["response"].(string)
	return resp
}

func postChat(t *testing.T, baseURL, message string) string {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		t.Fatalf("marshal chat request: %v", err)
	}
	resp, err := http.Post(baseURL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /api/chat failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /api/chat status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read chat stream: %v", err)
	}
	return string(data)
}

// readSSEEvent reads one event from a live stream.
func readSSEEvent(t *testing.T, br *bufio.Reader) sseEvent {
	t.Helper()

	var ev sseEvent
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			t.Fatalf("read SSE stream: %v", err)
		}
		line = strings.TrimRight(line, "\n")
		if line == "" {
			if ev.name != "" || ev.data != "" {
				return ev
			}
			continue
		}
		if rest, ok := strings.CutPrefix(line, "event: "); ok {
			ev.name = rest
		}
		if rest, ok := strings.CutPrefix(line, "data: "); ok {
			ev.data = rest
		}
	}
}

func TestChatStreamsTwoUpdates(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "the answer is 42"}))
	srv := env.server(t)

	body := postChat(t, srv.URL, "compute the answer")
	updates := chatUpdates(t, body)
	if len(updates) != 2 {
		t.Fatalf("update count = %d, want 2\nbody: %s", len(updates), body)
	}

	first, second := updates[0], updates[1]
	if first["outcome"] != string(session.OutcomeProcessing) {
		t.Errorf("first outcome = %v, want processing", first["outcome"])
	}
	if got, want := updateResponse(t, first), i18n.Lookup(i18n.DefaultLanguage, "processing"); got != want {
		t.Errorf("placeholder = %q, want %q", got, want)
	}

	if second["outcome"] != string(session.OutcomeCompleted) {
		t.Errorf("second outcome = %v, want completed", second["outcome"])
	}
	if got := updateResponse(t, second); !strings.Contains(got, "the answer is 42") {
		t.Errorf("final response %q does not contain the agent result", got)
	}

	if first["run_id"] == "" || first["run_id"] != second["run_id"] {
		t.Errorf("run_id mismatch: %v then %v", first["run_id"], second["run_id"])
	}
}

func TestChatEmptyMessageNoop(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	updates := chatUpdates(t, postChat(t, srv.URL, "   "))
	if len(updates) != 1 {
		t.Fatalf("update count = %d, want 1", len(updates))
	}
	if updates[0]["outcome"] != string(session.OutcomeNoop) {
		t.Errorf("outcome = %v, want noop", updates[0]["outcome"])
	}
}

func TestChatAgentErrorBecomesNotice(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{err: io.ErrUnexpectedEOF}))
	srv := env.server(t)

	updates := chatUpdates(t, postChat(t, srv.URL, "will fail"))
	if len(updates) != 2 {
		t.Fatalf("update count = %d, want 2", len(updates))
	}

	final := updates[1]
	if final["outcome"] != string(session.OutcomeFailed) {
		t.Errorf("outcome = %v, want failed", final["outcome"])
	}
	if errText, _ := final["error"].(string); !strings.Contains(errText, "agent run") {
		t.Errorf("error = %q, want an agent run error", errText)
	}
	if got := updateResponse(t, final); !strings.Contains(got, "❌") {
		t.Errorf("final response %q is not an error notice", got)
	}
}

func TestChatBusyRejectsParallelSubmission(t *testing.T) {
	gate := make(chan struct{})
	env := newTestEnv(t, staticFactory(&stubAgent{result: "slow done", gate: gate}))
	srv := env.server(t)

	payload, err := json.Marshal(map[string]string{"message": "long task"})
	if err != nil {
		t.Fatalf("marshal chat request: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /api/chat failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	br := bufio.NewReader(resp.Body)
	first := readSSEEvent(t, br)
	if first.name != "update" || !strings.Contains(first.data, string(session.OutcomeProcessing)) {
		t.Fatalf("first event = %+v, want a processing update", first)
	}

	// A second submission while the first is running is rejected.
	updates := chatUpdates(t, postChat(t, srv.URL, "me too"))
	if len(updates) != 1 {
		t.Fatalf("parallel update count = %d, want 1", len(updates))
	}
	if updates[0]["outcome"] != string(session.OutcomeBusy) {
		t.Errorf("parallel outcome = %v, want busy", updates[0]["outcome"])
	}

	close(gate)
	rest, err := io.ReadAll(br)
	if err != nil {
		t.Fatalf("read stream remainder: %v", err)
	}
	remainder := chatUpdates(t, string(rest))
	if len(remainder) == 0 {
		t.Fatalf("no further updates after gate release\nremainder: %s", rest)
	}
	if got := remainder[len(remainder)-1]["outcome"]; got != string(session.OutcomeCompleted) {
		t.Errorf("final outcome = %v, want completed", got)
	}
}

func TestChatRequestBodyTooLarge(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	payload, err := json.Marshal(map[string]string{"message": strings.Repeat("a", 2<<20)})
	if err != nil {
		t.Fatalf("marshal oversized request: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /api/chat failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", resp.StatusCode)
	}
}

func TestChatInvalidBody(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "unused"}))
	srv := env.server(t)

	resp, err := http.Post(srv.URL+"/api/chat", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatalf("POST /api/chat failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestChatArchivesCompletedTurn(t *testing.T) {
	env := newTestEnv(t, staticFactory(&stubAgent{result: "archived result"}))
	srv := env.server(t)

	postChat(t, srv.URL, "please archive this")

	records, err := env.repo.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("archive count = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Message != "please archive this" {
		t.Errorf("Message = %q, want the submitted prompt", rec.Message)
	}
	if !strings.Contains(rec.Response, "archived result") {
		t.Errorf("Response = %q, want the agent result", rec.Response)
	}
	if rec.Outcome != string(session.OutcomeCompleted) {
		t.Errorf("Outcome = %q, want completed", rec.Outcome)
	}

	if events := env.tlog.Recent(0); len(events) != 2 {
		t.Errorf("transcript events = %d, want 2", len(events))
	}
}
