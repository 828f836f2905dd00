package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/tricks/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it; other errors fall back to Error().
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain as rendered by the pretty formatter.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// sink is the handler state shared by a Logger and all its prefixed views.
type sink struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	jsonMode bool
	output   io.Writer
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	*sink
	prefix string
}

// New creates a new Logger instance.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		sink: &sink{
			logger: slog.New(handler),
			output: os.Stderr,
		},
	}
}

// WithPrefix returns a view of the logger that tags every record with prefix.
// The view shares output and format with its parent.
func (l *Logger) WithPrefix(prefix string) ports.Logger {
	return &Logger{sink: l.sink, prefix: prefix}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (s *sink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	s.output = w
	s.logger = slog.New(newHandler(w, s.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved from SetOutput calls.
func (s *sink) SetJSON(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jsonMode = enable

	w := s.output
	if w == nil {
		w = os.Stderr
	}
	s.logger = slog.New(newHandler(w, enable))
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

func (l *Logger) args(extra ...any) []any {
	if l.prefix == "" {
		return extra
	}
	return append([]any{PrefixKey, l.prefix}, extra...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, l.args()...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, l.args()...)
}

// Error logs an error. In pretty mode the chain is rendered hierarchically
// with a "Caused by" section and each level's metadata.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", l.args("error", err)...)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)), l.args()...)
}

// collectErrorEntries walks the chain while errors expose their own message.
// The first error without one contributes its full Error() text and ends the walk.
// Levels with an empty message fold their metadata into the next level.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{
				Message:  current.Error(),
				Metadata: mergeMetadata(pending, nil),
			})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			pending = mergeMetadata(pending, meta)
		} else {
			entries = append(entries, ErrorEntry{
				Message:  m.Message(),
				Metadata: mergeMetadata(pending, meta),
			})
			pending = nil
		}

		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(pending, meta map[string]any) map[string]any {
	if len(pending) == 0 {
		return meta
	}
	merged := make(map[string]any, len(pending)+len(meta))
	for k, v := range pending {
		merged[k] = v
	}
	for k, v := range meta {
		merged[k] = v
	}
	return merged
}

func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		lead, indent := "    → ", "      "
		if i == 0 {
			lead, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, lead+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
