// Package agent connects the web UI to the external Manus agent service.
package agent

import (
	"context"
)

// Request is one prompt submission to the agent.
type Request struct {
	// RunID correlates the submission across logs, traces, and transcripts.
	RunID string
	// Prompt is the user's request text, forwarded verbatim.
	Prompt string
	// Language is the UI language active when the request was made.
	Language string
}

// Agent is a live handle to one agent instance. The session controller
// owns the handle exclusively; no other component keeps a reference.
type Agent interface {
	// Run executes one request to completion and returns the final result
	// text. Long-running with no client-side deadline: cancellation comes
	// from ctx only.
	Run(ctx context.Context, req Request) (string, error)

	// Health reports the remote service's liveness status.
	Health(ctx context.Context) (string, error)

	// Cleanup releases agent resources. Safe to call more than once.
	Cleanup(ctx context.Context) error
}

// Factory constructs an agent handle on first use. Construction is slow
// (dial plus readiness wait) and may fail; a failed construction must
// leave no live resources behind.
type Factory func(ctx context.Context) (Agent, error)
