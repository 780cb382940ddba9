package translog

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/foundationagents/manus-webui/internal/session"
	"github.com/foundationagents/manus-webui/internal/store"
)

// Recorder fans one finished chat submission out to the transcript logger,
// the SQLite archive, and the submission metrics. Both chat transports
// share it so a turn is recorded the same way regardless of how it arrived.
type Recorder struct {
	log    *Logger
	repo   store.Repository
	logger *slog.Logger
	meter  metric.Meter
}

// NewRecorder builds a Recorder. repo may be nil to skip archiving.
func NewRecorder(log *Logger, repo store.Repository, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		log:    log,
		repo:   repo,
		logger: logger,
		meter:  otel.Meter("manus-webui/translog"),
	}
}

// RecentEvents returns up to n of the most recent transcript events,
// newest first. It backs the transcripts endpoint when no durable
// archive is configured.
func (r *Recorder) RecentEvents(n int) []Event {
	return r.log.Recent(n)
}

// Record logs the user message and the final update of one submission.
// channel names the transport the message arrived on. Noop outcomes are
// skipped: nothing was submitted and nothing answered. Busy rejections
// are logged but not archived, since no run happened.
func (r *Recorder) Record(ctx context.Context, channel, lang, message string, final session.Update, started time.Time) {
	if final.Outcome == session.OutcomeNoop {
		return
	}

	response := ""
	if n := len(final.History); n > 0 {
		response = final.History[n-1].Response
	}

	r.log.Log(Event{
		Timestamp:  started.UTC().Format(time.RFC3339Nano),
		RunID:      final.RunID,
		Channel:    channel,
		Direction:  DirectionOutbound,
		EventType:  EventUserMessage,
		ContentRaw: message,
		Meta:       map[string]any{"language": lang},
	})

	eventType := EventAgentResponse
	if final.Outcome == session.OutcomeBusy {
		eventType = EventBusyRejected
	}
	meta := map[string]any{
		"language":    lang,
		"outcome":     string(final.Outcome),
		"duration_ms": time.Since(started).Milliseconds(),
	}
	if final.Err != nil {
		meta["error"] = final.Err.Error()
	}
	r.log.Log(Event{
		RunID:      final.RunID,
		Channel:    channel,
		Direction:  DirectionInbound,
		EventType:  eventType,
		ContentRaw: response,
		Meta:       meta,
	})

	if counter, err := r.meter.Int64Counter(
		"chat.submissions",
		metric.WithDescription("Chat submissions by final outcome"),
	); err == nil {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", string(final.Outcome)),
			attribute.String("channel", channel),
		))
	}
	if final.Outcome == session.OutcomeBusy {
		if counter, err := r.meter.Int64Counter(
			"chat.busy_rejections",
			metric.WithDescription("Submissions rejected because a run was in progress"),
		); err == nil {
			counter.Add(ctx, 1, metric.WithAttributes(attribute.String("channel", channel)))
		}
	}

	// Abandoned streams end on the processing placeholder; only finished
	// runs belong in the archive.
	if r.repo == nil || final.RunID == "" || !final.Final() {
		return
	}

	// The request context ends with the response stream; archiving gets
	// its own deadline so a canceled request cannot lose the row.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	rec := &store.Record{
		RunID:      final.RunID,
		Message:    message,
		Response:   response,
		Outcome:    string(final.Outcome),
		Language:   lang,
		DurationMs: time.Since(started).Milliseconds(),
		CreatedAt:  started,
	}
	if err := r.repo.SaveTurn(saveCtx, rec); err != nil {
		r.logger.Error("Failed to archive conversation turn", "run_id", final.RunID, "error", err)
	}
}
