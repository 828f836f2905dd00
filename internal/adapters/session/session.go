// Package session implements the observers a supervised run reports to.
package session

import (
	"context"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/tricks/internal/adapters/detector"
	"go.trai.ch/tricks/internal/core/ports"
)

// Surface is a session with a lifecycle around the run it observes.
type Surface interface {
	ports.Session
	// Start prepares the surface before the first event.
	Start(ctx context.Context) error
	// Stop asks the surface to finish once the run is over.
	Stop() error
	// Wait blocks until the surface has terminated.
	Wait() error
}

// New returns the surface for mode writing to w. ModeAuto must be resolved by the caller.
// opts only apply to the TUI.
func New(mode detector.OutputMode, w io.Writer, opts ...tea.ProgramOption) Surface {
	if w == nil {
		w = os.Stdout
	}

	switch mode {
	case detector.ModeTUI:
		return NewTUI(NewModel(w), append([]tea.ProgramOption{tea.WithOutput(w)}, opts...)...)
	case detector.ModeJSON:
		return NewJSON(w)
	default:
		return NewLinear(w)
	}
}

// stopSignal lets Wait block until Stop for surfaces without an event loop.
type stopSignal struct {
	once sync.Once
	done chan struct{}
}

func (s *stopSignal) stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *stopSignal) wait() {
	<-s.done
}
