package logger_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tricks/internal/adapters/logger"
)

func TestPrettyHandler_Golden(t *testing.T) {
	same := func(h slog.Handler) slog.Handler { return h }

	tests := []struct {
		name   string
		setup  func(h slog.Handler) slog.Handler
		log    func(l *slog.Logger)
		golden string
	}{
		{
			name:   "info",
			setup:  same,
			log:    func(l *slog.Logger) { l.Info("Executing winetricks") },
			golden: "handler_info",
		},
		{
			name:   "warn",
			setup:  same,
			log:    func(l *slog.Logger) { l.Warn("winetricks exited with code 1") },
			golden: "handler_warn",
		},
		{
			name:   "error",
			setup:  same,
			log:    func(l *slog.Logger) { l.Error("wine: Unhandled page fault") },
			golden: "handler_error",
		},
		{
			name:   "debug is filtered",
			setup:  same,
			log:    func(l *slog.Logger) { l.Debug("probing zenity") },
			golden: "handler_debug_filtered",
		},
		{
			name: "handler attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("wine_prefix", "/games/pfx"), slog.String("wine_type", "proton")})
			},
			log:    func(l *slog.Logger) { l.Info("resolved installation") },
			golden: "handler_attrs",
		},
		{
			name: "group attr",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.Group("run", slog.Group("tool", slog.String("path", "/tools/winetricks")))})
			},
			log:    func(l *slog.Logger) { l.Info("launching") },
			golden: "handler_attrs_group",
		},
		{
			name: "empty attr value",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("verbs", "")})
			},
			log:    func(l *slog.Logger) { l.Info("no verbs requested") },
			golden: "handler_attrs_empty",
		},
		{
			name: "nested groups",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("download").WithGroup("http")
			},
			log:    func(l *slog.Logger) { l.Info("fetched", "status", 200) },
			golden: "handler_group_nested",
		},
		{
			name: "empty group name is ignored",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("")
			},
			log:    func(l *slog.Logger) { l.Info("probe", "dependency", "cabextract") },
			golden: "handler_group_empty",
		},
		{
			name:   "record attr kinds",
			setup:  same,
			log:    func(l *slog.Logger) { l.Info("checked dependencies", "missing", 2, "ok", false, "first", "zenity") },
			golden: "handler_record_attrs",
		},
		{
			name:   "multiline message",
			setup:  same,
			log:    func(l *slog.Logger) { l.Info("installing verbs:\nvcrun2019\ncorefonts") },
			golden: "handler_record_multiline",
		},
		{
			name:   "empty message",
			setup:  same,
			log:    func(l *slog.Logger) { l.Info("", "exit_code", 0) },
			golden: "handler_record_empty_msg",
		},
		{
			name: "group with handler and record attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("run").WithAttrs([]slog.Attr{slog.String("id", "7f3a")})
			},
			log:    func(l *slog.Logger) { l.Info("flushed", "lines", 12) },
			golden: "handler_combined_group",
		},
		{
			name: "top level prefix renders as tag",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String(logger.PrefixKey, "Winetricks")})
			},
			log:    func(l *slog.Logger) { l.Info("prefixed message", "verb", "vcrun2019") },
			golden: "handler_prefix_attr",
		},
		{
			name: "grouped prefix stays a plain attribute",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("run")
			},
			log:    func(l *slog.Logger) { l.Info("grouped prefix", logger.PrefixKey, "/games/pfx") },
			golden: "handler_prefix_in_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := tt.setup(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			tt.log(slog.New(handler))

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		handler slog.Level
		record  slog.Level
		want    bool
	}{
		{handler: slog.LevelInfo, record: slog.LevelDebug, want: false},
		{handler: slog.LevelInfo, record: slog.LevelInfo, want: true},
		{handler: slog.LevelInfo, record: slog.LevelError, want: true},
		{handler: slog.LevelDebug, record: slog.LevelDebug, want: true},
		{handler: slog.LevelError, record: slog.LevelWarn, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.handler.String()+"/"+tt.record.String(), func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handler})
			assert.Equal(t, tt.want, handler.Enabled(t.Context(), tt.record))
		})
	}
}

func TestPrettyHandler_AttrsBeforeGroupKeepTheirScope(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("verb", "vcrun2019")}).
		WithGroup("dependency")
	slog.New(handler).Warn("missing", "name", "zenity")

	assert.Equal(t, "! missing verb=vcrun2019 dependency.name=zenity\n", buf.String())
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelInfo})
	})
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestPrettyHandler_Handle_WriteError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	handler := logger.NewPrettyHandler(brokenWriter{}, &slog.HandlerOptions{Level: slog.LevelInfo})

	rec := slog.NewRecord(time.Time{}, slog.LevelInfo, "Executing winetricks", 0)
	assert.Error(t, handler.Handle(t.Context(), rec))
}
