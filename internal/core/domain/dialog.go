package domain

// DialogType is the severity of a modal dialog.
type DialogType string

const (
	// DialogError is an error dialog.
	DialogError DialogType = "ERROR"
	// DialogWarning is a warning dialog.
	DialogWarning DialogType = "WARNING"
	// DialogInfo is an informational dialog.
	DialogInfo DialogType = "MESSAGE"
)

// Dialog is a modal notification request sent to a session.
type Dialog struct {
	Title   string     `json:"title"`
	Message string     `json:"message"`
	Type    DialogType `json:"type"`
}
