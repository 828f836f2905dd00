package session

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tricks/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Wine).
			Foreground(style.Paper)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.Paper)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(style.Wine)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Cork)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Cork).
			Faint(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Red).
			Padding(1, 2)
)
