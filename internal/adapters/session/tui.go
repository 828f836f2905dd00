package session

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

// TUI wraps the Bubble Tea model as an interactive session.
type TUI struct {
	program *tea.Program
	model   *Model

	startOnce sync.Once
	done      chan struct{}
	err       error
}

// NewTUI creates a new TUI session.
func NewTUI(model *Model, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		program: tea.NewProgram(model, opts...),
		model:   model,
		done:    make(chan struct{}),
	}
}

// Start launches the TUI in a background goroutine.
func (t *TUI) Start(_ context.Context) error {
	t.startOnce.Do(func() {
		go func() {
			defer close(t.done)
			_, t.err = t.program.Run()
		}()
	})
	return nil
}

// Stop signals the TUI to quit.
func (t *TUI) Stop() error {
	t.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (t *TUI) Wait() error {
	<-t.done
	return t.err
}

// Done is closed once the TUI has terminated, for example because the user quit.
func (t *TUI) Done() <-chan struct{} {
	return t.done
}

// SendProgress forwards the feed to the progress pane.
func (t *TUI) SendProgress(event string, lines []string) {
	t.program.Send(MsgProgress{Event: event, Lines: lines})
}

// ShowDialog opens a modal and blocks until it is dismissed.
func (t *TUI) ShowDialog(ctx context.Context, dialog domain.Dialog) error {
	select {
	case <-t.done:
		return zerr.Wrap(domain.ErrSessionClosed, "show dialog")
	default:
	}

	ack := make(chan struct{})
	t.program.Send(MsgDialog{Dialog: dialog, Ack: ack})

	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-t.done:
		return zerr.Wrap(domain.ErrSessionClosed, "show dialog")
	}
}

// Program returns the underlying tea.Program for testing.
func (t *TUI) Program() *tea.Program {
	return t.program
}
