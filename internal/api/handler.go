// Package api provides the HTTP handlers for the web UI.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/foundationagents/manus-webui/internal/config"
	"github.com/foundationagents/manus-webui/internal/i18n"
	"github.com/foundationagents/manus-webui/internal/session"
	"github.com/foundationagents/manus-webui/internal/store"
	"github.com/foundationagents/manus-webui/internal/translog"
)

const healthCheckTimeout = 5 * time.Second

// Broadcaster pushes a server-side event to every connected chat client.
// The WebSocket registry implements it; nil disables pushes.
type Broadcaster interface {
	Broadcast(ctx context.Context, v any) int
}

// Handler serves the /api routes.
type Handler struct {
	controller *session.Controller
	settings   *config.SettingsSource
	repo       store.Repository
	recorder   *translog.Recorder
	broadcast  Broadcaster
	logger     *slog.Logger
}

// NewHandler creates a new Handler with common dependencies. repo may be
// nil when the durable archive is disabled.
func NewHandler(controller *session.Controller, settings *config.SettingsSource, repo store.Repository, recorder *translog.Recorder, broadcast Broadcaster, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		controller: controller,
		settings:   settings,
		repo:       repo,
		recorder:   recorder,
		broadcast:  broadcast,
		logger:     logger,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/labels", h.GetLabels)
		r.Post("/language", h.SetLanguage)
		r.Post("/chat", h.Chat)
		r.Get("/transcripts", h.Transcripts)
		r.Get("/health", h.Health)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Labels is one language's full set of UI strings, resolved and
// interpolated, ready for the page to render.
type Labels struct {
	Language  string            `json:"language"`
	Languages []i18n.Option     `json:"languages"`
	Strings   map[string]string `json:"strings"`
	Examples  []string          `json:"examples"`
}

// labelsFrame is the WebSocket push sent when the language changes.
type labelsFrame struct {
	Type   string `json:"type"`
	Labels Labels `json:"labels"`
}

// labelBatch resolves every label for lang. The settings panel text is
// interpolated from the agent's TOML configuration at call time, so file
// edits show up on the next fetch.
func (h *Handler) labelBatch(lang string) Labels {
	batch := i18n.Strings(lang)

	settings := h.settings.Current()
	content, err := i18n.Format(lang, "config_content", map[string]string{
		"model":     settings.Model,
		"workspace": settings.Workspace,
	})
	if err != nil {
		// Leave the raw template in place rather than drop the panel.
		h.logger.Error("Label interpolation failed", "key", "config_content", "error", err)
	} else {
		batch["config_content"] = content
	}

	return Labels{
		Language:  lang,
		Languages: i18n.Languages(),
		Strings:   batch,
		Examples:  i18n.Examples(lang),
	}
}

// GetLabels returns the label batch for the active language, or for an
// explicit ?lang= override.
func (h *Handler) GetLabels(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.controller.Language()
	} else if !i18n.Supported(lang) {
		Error(w, http.StatusBadRequest, "unsupported language")
		return
	}

	JSON(w, http.StatusOK, h.labelBatch(lang))
}

type languageRequest struct {
	Language string `json:"language"`
}

// SetLanguage switches the UI language, answers with the new label batch,
// and pushes it to every open chat connection.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.controller.SetLanguage(req.Language); err != nil {
		Error(w, http.StatusBadRequest, "unsupported language")
		return
	}

	batch := h.labelBatch(req.Language)
	if h.broadcast != nil {
		n := h.broadcast.Broadcast(r.Context(), labelsFrame{Type: "labels", Labels: batch})
		h.logger.Info("Labels pushed to chat connections", "language", req.Language, "connections", n)
	}

	JSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"language": req.Language,
		"labels":   batch,
	})
}

// Transcripts returns recent archived turns, newest first. Without a
// durable archive the in-memory ring of transcript events answers
// instead, so the endpoint stays useful when the database is disabled.
func (h *Handler) Transcripts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	if h.repo == nil {
		events := h.recorder.RecentEvents(limit)
		if events == nil {
			events = []translog.Event{}
		}
		JSON(w, http.StatusOK, map[string]any{
			"transcripts": events,
			"count":       len(events),
			"source":      "memory",
		})
		return
	}

	records, err := h.repo.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read transcript archive", "error", err)
		Error(w, http.StatusInternalServerError, "failed to read transcripts")
		return
	}
	if records == nil {
		records = []*store.Record{}
	}

	JSON(w, http.StatusOK, map[string]any{
		"transcripts": records,
		"count":       len(records),
		"source":      "archive",
	})
}

// Health returns the health status of the API and its dependencies. A
// dead database degrades the service; an unreachable agent does not,
// because the agent is dialed lazily and may simply not be needed yet.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{"api": "ok"}
	status := "healthy"
	statusCode := http.StatusOK

	if h.repo == nil {
		checks["database"] = "disabled"
	} else if err := h.repo.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", "component", "database", "error", err)
		checks["database"] = "unreachable"
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	agentStatus, err := h.controller.AgentHealth(ctx)
	if err != nil {
		h.logger.Warn("Agent health probe failed", "error", err)
		checks["agent"] = "unreachable"
	} else {
		checks["agent"] = agentStatus
	}

	JSON(w, statusCode, map[string]any{
		"status": status,
		"checks": checks,
		"busy":   h.controller.Busy(),
	})
}
