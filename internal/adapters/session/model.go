package session

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/ui/output"
)

const (
	// footerHeight is the help line below the progress pane.
	footerHeight = 1
	// dialogWidthRatio is the share of the screen a dialog may use.
	dialogWidthRatio = 0.6
	minDialogWidth   = 20
)

// MsgProgress carries a progress feed snapshot to the model.
type MsgProgress struct {
	Event string
	Lines []string
}

// MsgDialog opens a modal. Ack is closed when the user dismisses it.
type MsgDialog struct {
	Dialog domain.Dialog
	Ack    chan struct{}
}

// Model is the Bubble Tea model of the interactive session: a scrolling
// progress pane with an optional modal on top.
type Model struct {
	Viewport viewport.Model
	Spinner  spinner.Model
	Lines    []string
	Event    string
	Dialog   *domain.Dialog
	Width    int
	Height   int
	Ready    bool

	ack chan struct{}
}

// NewModel creates a new session model rendering for w.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w, output.Interactive)
	lipgloss.SetColorProfile(out.Profile)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &Model{
		Viewport: viewport.New(0, 0),
		Spinner:  s,
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.dismiss()
			return m, tea.Quit
		case "enter", "esc", " ":
			if m.Dialog != nil {
				m.dismiss()
				return m, nil
			}
		}
		if m.Dialog == nil {
			m.Viewport, cmd = m.Viewport.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		headerHeight := lipgloss.Height(m.header())
		m.Viewport.Width = msg.Width
		m.Viewport.Height = max(msg.Height-headerHeight-footerHeight, 0)
		m.Ready = true
		m.refresh()

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)

	case MsgProgress:
		m.Event = msg.Event
		m.Lines = msg.Lines
		m.refresh()

	case MsgDialog:
		// A new modal replaces one that is still open.
		m.dismiss()
		dialog := msg.Dialog
		m.Dialog = &dialog
		m.ack = msg.Ack
	}

	return m, cmd
}

// refresh puts the feed into the viewport, following the tail unless the
// user scrolled up.
func (m *Model) refresh() {
	follow := m.Viewport.AtBottom()
	m.Viewport.SetContent(strings.Join(m.Lines, "\n"))
	if follow {
		m.Viewport.GotoBottom()
	}
}

func (m *Model) dismiss() {
	if m.ack != nil {
		close(m.ack)
		m.ack = nil
	}
	m.Dialog = nil
}
