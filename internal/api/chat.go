package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/foundationagents/manus-webui/internal/session"
	"github.com/foundationagents/manus-webui/internal/translog"
)

const defaultMaxRequestBodySize = 1 << 20 // 1MB

// sseKeepaliveInterval paces the ping events that keep idle proxies from
// cutting the stream while a long agent run produces nothing.
const sseKeepaliveInterval = 10 * time.Second

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message string         `json:"message"`
	History []session.Turn `json:"history"`
}

// chatEvent is the data payload of one SSE update event.
type chatEvent struct {
	session.Update
	Error string `json:"error,omitempty"`
}

func newChatEvent(update session.Update) chatEvent {
	event := chatEvent{Update: update}
	if update.Err != nil {
		event.Error = update.Err.Error()
	}
	return event
}

// Chat accepts one submission and streams history snapshots back as
// server-sent events: an update event per snapshot, ping events between
// them, and the connection closing when the turn is settled.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, defaultMaxRequestBodySize)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		Error(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	started := time.Now()
	lang := h.controller.Language()

	// The submit loop blocks in the agent between the placeholder and the
	// final event, so keepalives come from a second goroutine. Writes to
	// the shared stream are serialized.
	var writeMu sync.Mutex
	pingCtx, stopPing := context.WithCancel(r.Context())
	defer stopPing()
	go func() {
		ticker := time.NewTicker(sseKeepaliveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pingCtx.Done():
				return
			case <-ticker.C:
				writeMu.Lock()
				err := writeSSE(w, "ping", `{"status":"alive"}`)
				if err == nil {
					flusher.Flush()
				}
				writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	var final session.Update
	for update := range h.controller.Submit(r.Context(), req.Message, req.History) {
		final = update

		data, err := json.Marshal(newChatEvent(update))
		if err != nil {
			h.logger.Warn("Failed to marshal chat update", "error", err)
			break
		}

		writeMu.Lock()
		writeErr := writeSSE(w, "update", string(data))
		if writeErr == nil {
			flusher.Flush()
		}
		writeMu.Unlock()
		if writeErr != nil {
			h.logger.Warn("Failed to write SSE update", "error", writeErr)
			break
		}
	}
	stopPing()

	h.recorder.Record(r.Context(), translog.ChannelHTTP, lang, req.Message, final, started)
}

func writeSSE(w io.Writer, event, data string) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
