package domain

// WinetricksArgs are the fixed arguments passed to Winetricks.
var WinetricksArgs = []string{"--force", "-q"}

// ProcessSpec describes a process to launch. Path is executed directly, never through a shell.
type ProcessSpec struct {
	Path string
	Args []string
	Env  ExecutionEnvironment
	Dir  string
	PTY  bool
}

// ProcessEventKind tags a ProcessEvent.
type ProcessEventKind uint8

const (
	// EventStdout carries a line written to stdout.
	EventStdout ProcessEventKind = iota
	// EventStderr carries a line written to stderr.
	EventStderr
	// EventError reports a spawn or runtime failure.
	EventError
	// EventExit reports that the process exited.
	EventExit
	// EventClose reports that all output streams were closed.
	EventClose
)

// String returns the event name.
func (k ProcessEventKind) String() string {
	switch k {
	case EventStdout:
		return "stdout"
	case EventStderr:
		return "stderr"
	case EventError:
		return "error"
	case EventExit:
		return "exit"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the event ends a run.
func (k ProcessEventKind) IsTerminal() bool {
	return k == EventError || k == EventExit || k == EventClose
}

// ProcessEvent is published by a running process.
type ProcessEvent struct {
	Kind     ProcessEventKind
	Data     string
	Err      error
	ExitCode int
}
