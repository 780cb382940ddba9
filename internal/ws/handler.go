package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/foundationagents/manus-webui/internal/session"
	"github.com/foundationagents/manus-webui/internal/translog"
)

const (
	// maxFrameBytes caps inbound chat frames, matching the HTTP body limit.
	maxFrameBytes = 1 << 20

	keepaliveInterval = 30 * time.Second
)

// Frame types exchanged with the page.
const (
	frameChat   = "chat"
	framePing   = "ping"
	framePong   = "pong"
	frameUpdate = "update"
	frameError  = "error"
)

// clientFrame is a message from the page.
type clientFrame struct {
	Type    string         `json:"type"`
	Message string         `json:"message,omitempty"`
	History []session.Turn `json:"history,omitempty"`
}

// updateFrame carries one session update to the page.
type updateFrame struct {
	Type string `json:"type"`
	session.Update
	Error string `json:"error,omitempty"`
}

func newUpdateFrame(update session.Update) updateFrame {
	frame := updateFrame{Type: frameUpdate, Update: update}
	if update.Err != nil {
		frame.Error = update.Err.Error()
	}
	return frame
}

// Handler upgrades GET /ws/chat and speaks the chat frame protocol.
type Handler struct {
	controller *session.Controller
	registry   *Registry
	recorder   *translog.Recorder
	origins    []string
	logger     *slog.Logger
}

// NewHandler builds the chat WebSocket handler. origins lists the
// Origin header values allowed to connect; "*" allows any.
func NewHandler(controller *session.Controller, registry *Registry, recorder *translog.Recorder, origins []string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		controller: controller,
		registry:   registry,
		recorder:   recorder,
		origins:    origins,
		logger:     logger,
	}
}

// ServeHTTP implements http.Handler for the WebSocket upgrade.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	sock, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Error("Failed to accept WebSocket", "error", err, "ip", r.RemoteAddr)
		return
	}
	sock.SetReadLimit(maxFrameBytes)
	defer func() {
		if closeErr := sock.Close(websocket.StatusNormalClosure, "session ended"); closeErr != nil {
			h.logger.Debug("Failed to close websocket", "error", closeErr)
		}
	}()

	conn := &wsConn{sock: sock}
	id := h.registry.register(conn)
	defer h.registry.unregister(id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	h.logger.Info("Chat connection opened", "conn_id", id, "ip", r.RemoteAddr)
	go h.keepaliveLoop(ctx, conn)
	h.readLoop(ctx, conn, id)
	h.logger.Info("Chat connection ended", "conn_id", id)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.origins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	h.logger.Warn("WebSocket origin rejected", "origin", origin)
	return false
}

func (h *Handler) readLoop(ctx context.Context, conn *wsConn, id int64) {
	for {
		_, message, err := conn.sock.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				h.logger.Debug("WebSocket closed by client", "conn_id", id)
			} else if ctx.Err() == nil {
				h.logger.Warn("WebSocket read error", "error", err, "conn_id", id)
			}
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			if err := conn.writeJSON(ctx, map[string]string{"type": frameError, "error": "invalid message"}); err != nil {
				return
			}
			continue
		}

		switch frame.Type {
		case frameChat:
			h.handleChat(ctx, conn, frame)
		case framePing:
			if err := conn.writeJSON(ctx, map[string]string{"type": framePong}); err != nil {
				h.logger.Debug("Failed to send pong", "error", err, "conn_id", id)
			}
		case framePong:
			// Keepalive acknowledgment, nothing to do.
		default:
			h.logger.Debug("Unknown frame type", "type", frame.Type, "conn_id", id)
		}
	}
}

// handleChat runs one submission inline, streaming every update back on
// this connection. The read loop blocks meanwhile, so a second message
// from the same tab waits; other connections submitting concurrently get
// the busy rejection from the controller.
func (h *Handler) handleChat(ctx context.Context, conn *wsConn, frame clientFrame) {
	started := time.Now()
	lang := h.controller.Language()

	var final session.Update
	for update := range h.controller.Submit(ctx, frame.Message, frame.History) {
		final = update
		if err := conn.writeJSON(ctx, newUpdateFrame(update)); err != nil {
			h.logger.Debug("Chat update write failed", "error", err)
			break
		}
	}

	h.recorder.Record(ctx, translog.ChannelWS, lang, frame.Message, final, started)
}

// keepaliveLoop pushes a ping frame periodically so idle proxies keep the
// connection open. Exits on the first failed write.
func (h *Handler) keepaliveLoop(ctx context.Context, conn *wsConn) {
	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.writeJSON(ctx, map[string]string{"type": framePing}); err != nil {
				return
			}
		}
	}
}
