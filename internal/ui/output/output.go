// Package output builds the termenv outputs shared by the logger and the
// progress sessions.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Surface says how output is consumed.
type Surface int

const (
	// Interactive is a terminal the user is watching (logger, TUI session).
	Interactive Surface = iota
	// Plain is a stream that may end up in a CI log (linear session).
	Plain
)

// Profile returns the color profile for surface. NO_COLOR always yields
// Ascii. Interactive surfaces detect the terminal, plain surfaces use ANSI.
func Profile(surface Surface) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if surface == Plain {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output on w for surface. A nil w means stderr.
func New(w io.Writer, surface Surface) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(surface)),
		termenv.WithTTY(true),
	)
}
