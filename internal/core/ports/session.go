package ports

import (
	"context"

	"go.trai.ch/tricks/internal/core/domain"
)

// Session is the observer of a supervised run, usually a UI.
// It decouples the supervisor from presentation, so the same run can drive a
// TUI, plain terminal output or a remote JSON consumer.
//
//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks
type Session interface {
	// SendProgress delivers a named event with the current progress lines, oldest first.
	SendProgress(event string, lines []string)

	// ShowDialog requests a modal notification.
	ShowDialog(ctx context.Context, dialog domain.Dialog) error
}
