package session

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"sync"

	"github.com/foundationagents/manus-webui/internal/agent"
	"github.com/foundationagents/manus-webui/internal/i18n"
	"github.com/google/uuid"
)

// ErrUnsupportedLanguage is returned by SetLanguage for codes outside the
// catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Config holds Controller construction parameters.
type Config struct {
	// Factory produces the agent handle on first use. Required.
	Factory agent.Factory
	// Language is the initial UI language. Defaults to i18n.DefaultLanguage.
	Language string
}

// Controller serializes submissions to the agent. It enforces
// single-flight: while a run is in progress, further submissions are
// rejected with a busy notice instead of queued. The agent handle is
// created lazily and reused until Cleanup.
type Controller struct {
	factory agent.Factory
	logger  *slog.Logger

	mu   sync.Mutex
	busy bool
	lang string

	agentMu sync.Mutex
	handle  agent.Agent
}

// NewController validates cfg and builds a Controller.
func NewController(cfg Config, logger *slog.Logger) (*Controller, error) {
	if cfg.Factory == nil {
		return nil, errors.New("session: agent factory is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	lang := cfg.Language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	if !i18n.Supported(lang) {
		return nil, fmt.Errorf("session: %w: %q", ErrUnsupportedLanguage, lang)
	}
	return &Controller{
		factory: cfg.Factory,
		logger:  logger,
		lang:    lang,
	}, nil
}

// Submit runs one conversation turn. The returned sequence yields history
// snapshots: two for an accepted submission (placeholder, then the final
// rewrite), one for empty input or a busy rejection. The flag guarding
// single-flight is cleared on every exit path, including an abandoned
// iteration.
//
// history is not mutated; each Update carries its own copy.
func (c *Controller) Submit(ctx context.Context, text string, history []Turn) iter.Seq[Update] {
	return func(yield func(Update) bool) {
		if strings.TrimSpace(text) == "" {
			yield(Update{History: snapshot(history), Outcome: OutcomeNoop})
			return
		}

		if !c.beginRun() {
			c.logger.Warn("Submission rejected, run already in progress", "prompt_length", len(text))
			hist := append(snapshot(history), Turn{User: text, Response: c.label("already_processing")})
			yield(Update{History: hist, Outcome: OutcomeBusy})
			return
		}
		defer c.endRun()

		runID := uuid.Must(uuid.NewV7()).String()
		lang := c.Language()
		c.logger.Info("Submission accepted", "run_id", runID, "language", lang, "prompt_length", len(text))

		hist := append(snapshot(history), Turn{User: text, Response: c.label("processing")})
		if !yield(Update{History: snapshot(hist), Input: "", Outcome: OutcomeProcessing, RunID: runID}) {
			return
		}

		outcome, response, err := c.execute(ctx, runID, lang, text)
		hist[len(hist)-1].Response = response
		yield(Update{History: hist, Input: "", Outcome: outcome, RunID: runID, Err: err})
	}
}

// execute initializes the agent if needed and runs the prompt. Failures
// never escape as errors to the UI: they come back as a formatted error
// response for the last turn, with the typed error attached for logging
// and transcripts.
func (c *Controller) execute(ctx context.Context, runID, lang, text string) (Outcome, string, error) {
	handle, err := c.ensureAgent(ctx)
	if err != nil {
		initErr := &agent.InitError{Err: err}
		c.logger.Error("Agent initialization failed", "run_id", runID, "error", err)
		return OutcomeFailed, c.format("error", map[string]string{"error": initErr.Error()}), initErr
	}

	result, err := handle.Run(ctx, agent.Request{RunID: runID, Prompt: text, Language: lang})
	if err != nil {
		runErr := &agent.RunError{Err: err}
		c.logger.Error("Agent run failed", "run_id", runID, "error", err)
		return OutcomeFailed, c.format("error", map[string]string{"error": runErr.Error()}), runErr
	}

	if strings.TrimSpace(result) == "" {
		c.logger.Info("Agent run completed without output", "run_id", runID)
		return OutcomeCompletedEmpty, c.label("completed_simple"), nil
	}

	c.logger.Info("Agent run completed", "run_id", runID, "result_length", len(result))
	return OutcomeCompleted, c.format("completed", map[string]string{"result": result}), nil
}

// ensureAgent returns the live agent handle, creating it on first use.
// On factory failure the handle stays unset so the next submission
// retries initialization.
func (c *Controller) ensureAgent(ctx context.Context) (agent.Agent, error) {
	c.agentMu.Lock()
	defer c.agentMu.Unlock()
	if c.handle != nil {
		return c.handle, nil
	}
	handle, err := c.factory(ctx)
	if err != nil {
		return nil, err
	}
	c.handle = handle
	c.logger.Info("Agent initialized")
	return handle, nil
}

// Cleanup releases the agent handle. Safe to call multiple times and
// before any agent was created; only the first call with a live handle
// does work.
func (c *Controller) Cleanup(ctx context.Context) error {
	c.agentMu.Lock()
	handle := c.handle
	c.handle = nil
	c.agentMu.Unlock()

	if handle == nil {
		return nil
	}
	c.logger.Info("Cleaning up agent")
	if err := handle.Cleanup(ctx); err != nil {
		return fmt.Errorf("session cleanup: %w", err)
	}
	return nil
}

// Language returns the current UI language. Reads are live: a switch
// mid-run affects labels resolved after it.
func (c *Controller) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// SetLanguage switches the UI language for subsequent label lookups.
func (c *Controller) SetLanguage(lang string) error {
	if !i18n.Supported(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
	c.logger.Info("Language switched", "language", lang)
	return nil
}

// Busy reports whether a run is in progress.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// AgentReady reports whether an agent handle exists.
func (c *Controller) AgentReady() bool {
	c.agentMu.Lock()
	defer c.agentMu.Unlock()
	return c.handle != nil
}

// AgentHealth probes the agent service. Before first use it reports
// "uninitialized" without dialing.
func (c *Controller) AgentHealth(ctx context.Context) (string, error) {
	c.agentMu.Lock()
	handle := c.handle
	c.agentMu.Unlock()
	if handle == nil {
		return "uninitialized", nil
	}
	return handle.Health(ctx)
}

func (c *Controller) beginRun() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

func (c *Controller) endRun() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) label(key string) string {
	return i18n.Lookup(c.Language(), key)
}

func (c *Controller) format(key string, subs map[string]string) string {
	s, err := i18n.Format(c.Language(), key, subs)
	if err != nil {
		c.logger.Error("Label interpolation failed", "key", key, "error", err)
		return i18n.Lookup(c.Language(), key)
	}
	return s
}
