package session

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/termenv"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/ui/output"
	"go.trai.ch/tricks/internal/ui/style"
)

// Linear prints progress as plain chronological lines, for pipes and CI.
// Each progress event carries the whole feed, so only lines not printed
// before are written.
type Linear struct {
	w   io.Writer
	out *termenv.Output

	mu   sync.Mutex
	last []string

	stopped stopSignal
}

// NewLinear creates a Linear session writing to w.
func NewLinear(w io.Writer) *Linear {
	return &Linear{
		w:   w,
		out: output.New(w, output.Plain),

		stopped: stopSignal{done: make(chan struct{})},
	}
}

// Start is a no-op for the linear session.
func (l *Linear) Start(_ context.Context) error {
	return nil
}

// Stop ends the session. It is safe to call more than once.
func (l *Linear) Stop() error {
	l.stopped.stop()
	return nil
}

// Wait blocks until Stop was called.
func (l *Linear) Wait() error {
	l.stopped.wait()
	return nil
}

// SendProgress prints the lines of the feed that were not printed yet.
func (l *Linear) SendProgress(_ string, lines []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prefix := l.out.String("[winetricks]").Faint().String()
	for _, line := range unseen(l.last, lines) {
		_, _ = fmt.Fprintf(l.w, "%s %s\n", prefix, line)
	}
	l.last = slices.Clone(lines)
}

// ShowDialog prints the dialog as a titled block.
func (l *Linear) ShowDialog(_ context.Context, dialog domain.Dialog) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	icon, color := dialogIcon(dialog.Type)
	title := l.out.String(icon + " " + dialog.Title).Foreground(l.out.Color(string(color))).Bold().String()

	_, err := fmt.Fprintf(l.w, "%s\n%s\n", title, indent.String(dialog.Message, 2))
	return err
}

// unseen returns the tail of next that follows the longest suffix of prev
// it starts with. A feed that moved on by more than its capacity is printed whole.
func unseen(prev, next []string) []string {
	for k := min(len(prev), len(next)); k > 0; k-- {
		if slices.Equal(prev[len(prev)-k:], next[:k]) {
			return next[k:]
		}
	}
	return next
}

func dialogIcon(t domain.DialogType) (string, lipgloss.Color) {
	switch t {
	case domain.DialogError:
		return style.Cross, style.Red
	case domain.DialogWarning:
		return style.Warning, style.Amber
	default:
		return style.Dot, style.Wine
	}
}
