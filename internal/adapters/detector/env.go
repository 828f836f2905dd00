// Package detector picks the session surface for a run from the terminal and
// the environment.
package detector

import (
	"os"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the session surface used for a run.
type OutputMode int

const (
	// ModeAuto defers to detection.
	ModeAuto OutputMode = iota
	// ModeTUI is the interactive progress pane.
	ModeTUI
	// ModeLinear prints plain progress lines.
	ModeLinear
	// ModeJSON emits newline-delimited JSON events for a launcher frontend.
	ModeJSON
)

// OverrideEnv lets a launcher choose the default mode, e.g. TRICKS_OUTPUT=json.
// The --output-mode flag still wins.
const OverrideEnv = "TRICKS_OUTPUT"

var modeNames = map[string]OutputMode{
	"auto":   ModeAuto,
	"":       ModeAuto,
	"tui":    ModeTUI,
	"linear": ModeLinear,
	"ci":     ModeLinear,
	"json":   ModeJSON,
}

// String returns the flag value selecting the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// ParseOutputMode maps a flag value to its mode. "ci" is an alias for linear.
func ParseOutputMode(s string) (OutputMode, error) {
	m, ok := modeNames[s]
	if !ok {
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrUnknownOutputMode, "resolve output mode"), "mode", s)
	}
	return m, nil
}

// environment is what detection looks at.
type environment struct {
	stdoutTTY bool
	ci        string
	term      string
	override  string
}

// DetectEnvironment returns the mode to use when the user asks for auto.
func DetectEnvironment() OutputMode {
	return detect(environment{
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		ci:        os.Getenv("CI"),
		term:      os.Getenv("TERM"),
		override:  os.Getenv(OverrideEnv),
	})
}

func detect(env environment) OutputMode {
	if m, err := ParseOutputMode(env.override); err == nil && m != ModeAuto {
		return m
	}

	switch {
	case !env.stdoutTTY, env.ci == "true", env.ci == "1", env.term == "dumb":
		return ModeLinear
	default:
		return ModeTUI
	}
}

// ResolveMode applies the --output-mode flag to the detected mode.
func ResolveMode(detected OutputMode, flag string) (OutputMode, error) {
	m, err := ParseOutputMode(flag)
	if err != nil {
		return ModeAuto, err
	}
	if m == ModeAuto {
		return detected, nil
	}
	return m, nil
}
