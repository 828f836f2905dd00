package domain

import "fmt"

// OutcomeKind tags a RunOutcome.
type OutcomeKind string

const (
	// OutcomeSuccess means the tool exited on its own.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeToolError means the process could not be spawned or failed at runtime.
	OutcomeToolError OutcomeKind = "tool_error"
	// OutcomeStreamClosed means the output streams closed before an exit was observed.
	OutcomeStreamClosed OutcomeKind = "stream_closed"
	// OutcomeSkipped means a precondition failed and no process was started.
	OutcomeSkipped OutcomeKind = "skipped"
)

// RunOutcome is the single terminal result of a supervised run.
type RunOutcome struct {
	Kind     OutcomeKind
	Message  string
	ExitCode int
}

// Success returns a successful outcome for the given exit code.
func Success(exitCode int) RunOutcome {
	return RunOutcome{Kind: OutcomeSuccess, ExitCode: exitCode}
}

// ToolError returns an outcome for a failed process.
func ToolError(message string) RunOutcome {
	return RunOutcome{Kind: OutcomeToolError, Message: message, ExitCode: -1}
}

// StreamClosed returns an outcome for a run whose streams closed first.
func StreamClosed() RunOutcome {
	return RunOutcome{Kind: OutcomeStreamClosed}
}

// Skipped returns an outcome for a run that never started.
func Skipped(reason string) RunOutcome {
	return RunOutcome{Kind: OutcomeSkipped, Message: reason}
}

// Failed reports whether the outcome is a tool error.
func (o RunOutcome) Failed() bool {
	return o.Kind == OutcomeToolError
}

// String returns a short human-readable description.
func (o RunOutcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("success (exit code %d)", o.ExitCode)
	case OutcomeToolError:
		return "tool error: " + o.Message
	case OutcomeSkipped:
		return "skipped: " + o.Message
	default:
		return string(o.Kind)
	}
}
