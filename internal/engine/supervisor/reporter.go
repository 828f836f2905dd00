package supervisor

import (
	"context"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
)

const (
	titleKey       = "box.error.winetricks.title"
	messageKey     = "box.error.winetricks.message"
	defaultTitle   = "Winetricks error"
	defaultMessage = "Winetricks returned the following error during execution:{{newLine}}{{error}}"
)

// Reporter turns a tool error into a modal dialog on the session.
type Reporter struct {
	session    ports.Session
	translator ports.Translator
	logger     ports.Logger
}

// NewReporter creates a Reporter.
func NewReporter(session ports.Session, translator ports.Translator, logger ports.Logger) *Reporter {
	return &Reporter{session: session, translator: translator, logger: logger}
}

// Dialog builds the localized error dialog for message.
func (r *Reporter) Dialog(message string) domain.Dialog {
	return domain.Dialog{
		Title: r.translator.T(titleKey, defaultTitle, nil),
		Message: r.translator.T(messageKey, defaultMessage, map[string]string{
			"newLine": "\n",
			"error":   message,
		}),
		Type: domain.DialogError,
	}
}

// ReportToolError shows the error dialog. A failed dispatch is logged and otherwise ignored.
func (r *Reporter) ReportToolError(ctx context.Context, message string) {
	if err := r.session.ShowDialog(ctx, r.Dialog(message)); err != nil {
		r.logger.Error(err)
	}
}
