package session

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

// DialogEvent is the event name of a dialog record.
const DialogEvent = "dialog"

// Record is one line of the JSON stream.
type Record struct {
	Event  string         `json:"event"`
	Lines  []string       `json:"lines,omitempty"`
	Dialog *domain.Dialog `json:"dialog,omitempty"`
}

// JSON writes every event as one JSON object per line, for a remote UI.
type JSON struct {
	mu      sync.Mutex
	enc     *json.Encoder
	stopped stopSignal
}

// NewJSON creates a JSON session writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w), stopped: stopSignal{done: make(chan struct{})}}
}

// Start is a no-op for the JSON session.
func (j *JSON) Start(_ context.Context) error {
	return nil
}

// Stop ends the session. It is safe to call more than once.
func (j *JSON) Stop() error {
	j.stopped.stop()
	return nil
}

// Wait blocks until Stop was called.
func (j *JSON) Wait() error {
	j.stopped.wait()
	return nil
}

// SendProgress writes a progress record. Write errors are dropped, the feed is best effort.
func (j *JSON) SendProgress(event string, lines []string) {
	_ = j.write(Record{Event: event, Lines: lines})
}

// ShowDialog writes a dialog record.
func (j *JSON) ShowDialog(_ context.Context, dialog domain.Dialog) error {
	if err := j.write(Record{Event: DialogEvent, Dialog: &dialog}); err != nil {
		return zerr.With(zerr.Wrap(err, "write dialog"), "title", dialog.Title)
	}
	return nil
}

func (j *JSON) write(rec Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.enc.Encode(rec)
}
