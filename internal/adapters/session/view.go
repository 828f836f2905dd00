package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.trai.ch/tricks/internal/core/domain"
)

// View renders the UI.
func (m *Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	if m.Dialog != nil {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.dialogBox())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		m.Viewport.View(),
		helpStyle.Render("↑/↓ scroll • q quit"),
	)
}

func (m *Model) header() string {
	status := statusStyle.Render(fmt.Sprintf("%d lines", len(m.Lines)))
	return titleStyle.Render("WINETRICKS") + " " + m.Spinner.View() + " " + status
}

func (m *Model) dialogBox() string {
	width := max(int(float64(m.Width)*dialogWidthRatio), minDialogWidth)

	title := titleStyle.Render(m.Dialog.Title)
	if m.Dialog.Type == domain.DialogError {
		title = failureTitleStyle.Render(m.Dialog.Title)
	}

	body := wordwrap.String(m.Dialog.Message, width)

	return dialogStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		body,
		"",
		helpStyle.Render("enter to dismiss"),
	))
}
