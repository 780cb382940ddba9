package agent

import "fmt"

// InitError reports a failed agent construction. The session controller
// leaves its handle unset on this error so the next submission can retry.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("agent init: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// RunError reports a failure from the agent's Run call. The turn is not
// retried; the message becomes a visible chat notice.
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("agent run: %v", e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
