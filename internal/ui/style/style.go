// Package style holds the palette and icons shared by the logger and the
// progress sessions.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Wine  = lipgloss.Color("#8E2C48")
	Cork  = lipgloss.Color("#8A7967")
	Paper = lipgloss.Color("#FAF7F2")
	Red   = lipgloss.Color("#D93025")
	Amber = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
