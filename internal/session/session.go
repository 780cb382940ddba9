// Package session owns the conversation state machine between the web UI
// and the Manus agent. A Controller accepts one submission at a time,
// streams intermediate and final history snapshots to the caller, and
// keeps the agent handle alive across turns.
package session

// Turn is one exchange in the conversation: what the user sent and what
// the assistant answered (or is about to answer).
type Turn struct {
	User     string `json:"user"`
	Response string `json:"response"`
}

// Outcome classifies an Update for consumers that branch on it (the SSE
// and WebSocket transports, the transcript store).
type Outcome string

const (
	// OutcomeNoop means the submission was empty and nothing changed.
	OutcomeNoop Outcome = "noop"
	// OutcomeBusy means another run holds the session; the submission was
	// rejected with a notice turn.
	OutcomeBusy Outcome = "busy"
	// OutcomeProcessing is the placeholder emission sent before the agent
	// is consulted.
	OutcomeProcessing Outcome = "processing"
	// OutcomeCompleted means the agent produced a non-empty result.
	OutcomeCompleted Outcome = "completed"
	// OutcomeCompletedEmpty means the agent finished but returned nothing
	// to show.
	OutcomeCompletedEmpty Outcome = "completed_empty"
	// OutcomeFailed means agent initialization or the run itself errored;
	// the error text is embedded in the last turn.
	OutcomeFailed Outcome = "failed"
)

// Update is one emission from Controller.Submit. History is a snapshot
// owned by the receiver; later emissions never mutate earlier ones.
// Input carries the new input-box value, which is always empty so the
// frontend clears the box as soon as a submission is accepted.
type Update struct {
	History []Turn  `json:"history"`
	Input   string  `json:"input"`
	Outcome Outcome `json:"outcome"`
	RunID   string  `json:"run_id,omitempty"`
	Err     error   `json:"-"`
}

// Final reports whether no further emissions follow this one.
func (u Update) Final() bool {
	return u.Outcome != OutcomeProcessing
}

func snapshot(history []Turn) []Turn {
	out := make([]Turn, len(history))
	copy(out, history)
	return out
}
