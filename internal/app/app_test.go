package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tricks/internal/adapters/detector"
	"go.trai.ch/tricks/internal/app"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/tricks/internal/core/ports/mocks"
	"go.trai.ch/tricks/internal/engine/supervisor"
	"go.trai.ch/tricks/internal/engine/winetricks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader       *mocks.MockConfigLoader
	launcher     *mocks.MockProcessLauncher
	prober       *mocks.MockCommandProber
	validator    *mocks.MockInstallationValidator
	fetcher      *mocks.MockFetcher
	connectivity *mocks.MockConnectivity
	logger       *mocks.MockLogger
	cfg          domain.Config
}

// setupAppTest wires an App from real engines over mocked adapters.
func setupAppTest(t *testing.T) (*app.App, *bytes.Buffer, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:       mocks.NewMockConfigLoader(ctrl),
		launcher:     mocks.NewMockProcessLauncher(ctrl),
		prober:       mocks.NewMockCommandProber(ctrl),
		validator:    mocks.NewMockInstallationValidator(ctrl),
		fetcher:      mocks.NewMockFetcher(ctrl),
		connectivity: mocks.NewMockConnectivity(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
	}

	m.cfg = domain.DefaultConfig()
	m.cfg.ToolsDir = filepath.Join(t.TempDir(), "tools")
	m.cfg.Language = "en"

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) { return len(p), nil }).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().AddEvent(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	resolver := mocks.NewMockWineResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(inst domain.WineInstallation, prefix string) domain.ToolInstallation {
			return domain.ToolInstallation{Type: inst.Type, Bin: inst.Bin, Prefix: prefix}
		},
	).AnyTimes()

	sup := supervisor.NewSupervisor(m.launcher, m.prober, resolver, m.validator, tracer, m.logger,
		supervisor.WithPlatform("linux"),
		supervisor.WithEnviron(func() []string { return []string{"PATH=/usr/bin"} }),
	)
	downloader := winetricks.NewDownloader(m.fetcher, tracer, m.logger, winetricks.WithPlatform("linux"))

	out := new(bytes.Buffer)
	a := app.New(m.loader, sup, downloader, m.logger, detector.ModeLinear).
		WithOutput(out).
		WithConnectivity(m.connectivity)

	return a, out, m
}

// installScript puts a Winetricks script in place so runs skip the download.
func (m appTestMocks) installScript(t *testing.T) {
	t.Helper()
	require.NoError(t, os.MkdirAll(m.cfg.ToolsDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(m.cfg.WinetricksPath(), []byte("#!/bin/sh\n"), domain.ExecPerm))
}

func (m appTestMocks) emit(events ...domain.ProcessEvent) {
	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ProcessSpec) <-chan domain.ProcessEvent {
			ch := make(chan domain.ProcessEvent, len(events))
			for _, ev := range events {
				ch <- ev
			}
			close(ch)
			return ch
		},
	)
}

func runOptions(mode string) app.RunOptions {
	return app.RunOptions{
		InstallationOptions: app.InstallationOptions{
			WineBin:  "/opt/wine/bin/wine",
			WineType: "wine",
			Prefix:   "/games/pfx",
		},
		OutputMode: mode,
		Verbs:      []string{"corefonts"},
	}
}

func TestApp_Run_Linear(t *testing.T) {
	a, out, m := setupAppTest(t)
	m.installScript(t)

	m.loader.EXPECT().Load("").Return(m.cfg, nil)
	m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.emit(
		domain.ProcessEvent{Kind: domain.EventStdout, Data: "Executing w_do_call corefonts"},
		domain.ProcessEvent{Kind: domain.EventExit},
		domain.ProcessEvent{Kind: domain.EventClose},
	)

	outcome, err := a.Run(t.Context(), runOptions("linear"))
	require.NoError(t, err)
	assert.Equal(t, domain.Success(0), outcome)
	assert.Contains(t, out.String(), "Executing w_do_call corefonts")
}

func TestApp_Run_JSONToolError(t *testing.T) {
	a, out, m := setupAppTest(t)
	m.installScript(t)

	m.loader.EXPECT().Load("").Return(m.cfg, nil)
	m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.emit(domain.ProcessEvent{
		Kind: domain.EventError,
		Err:  zerr.Wrap(domain.ErrProcessStartFailed, "spawn winetricks ENOENT"),
	})

	outcome, err := a.Run(t.Context(), runOptions("json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessFailed)
	assert.Equal(t, domain.OutcomeToolError, outcome.Kind)
	assert.Contains(t, out.String(), `"event":"dialog"`)
	assert.Contains(t, out.String(), `spawn winetricks ENOENT`)
}

// quitSurface is a session the user closes before the run ends.
type quitSurface struct{}

func (quitSurface) SendProgress(string, []string) {}

func (quitSurface) ShowDialog(context.Context, domain.Dialog) error { return domain.ErrSessionClosed }

func (quitSurface) Start(context.Context) error { return nil }

func (quitSurface) Stop() error { return nil }

func (quitSurface) Wait() error { return nil }

func TestApp_Run_ClosedSessionStopsWinetricks(t *testing.T) {
	a, _, m := setupAppTest(t)
	m.installScript(t)
	a.WithSurface(quitSurface{})

	m.loader.EXPECT().Load("").Return(m.cfg, nil)
	m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.ProcessSpec) <-chan domain.ProcessEvent {
			ch := make(chan domain.ProcessEvent, 1)
			go func() {
				defer close(ch)
				<-ctx.Done()
				ch <- domain.ProcessEvent{
					Kind:     domain.EventError,
					Err:      zerr.Wrap(domain.ErrProcessFailed, "signal: killed"),
					ExitCode: -1,
				}
			}()
			return ch
		},
	)

	outcome, err := a.Run(t.Context(), runOptions("tui"))
	require.ErrorIs(t, err, domain.ErrRunCancelled)
	assert.Equal(t, domain.OutcomeToolError, outcome.Kind)
	assert.Equal(t, "signal: killed", outcome.Message)
}

func TestApp_Run_DownloadsMissingScript(t *testing.T) {
	a, _, m := setupAppTest(t)

	m.loader.EXPECT().Load("").Return(m.cfg, nil)
	m.connectivity.EXPECT().IsOnline(gomock.Any()).Return(true)
	m.fetcher.EXPECT().Fetch(gomock.Any(), m.cfg.DownloadURL, m.cfg.WinetricksPath()).Return(true, nil)
	m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.emit(domain.ProcessEvent{Kind: domain.EventExit}, domain.ProcessEvent{Kind: domain.EventClose})

	outcome, err := a.Run(t.Context(), runOptions("linear"))
	require.NoError(t, err)
	assert.Equal(t, domain.Success(0), outcome)
}

func TestApp_Run_InvalidInstallationIsSkipped(t *testing.T) {
	a, _, m := setupAppTest(t)
	m.installScript(t)

	m.loader.EXPECT().Load("").Return(m.cfg, nil)
	m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).
		Return(zerr.Wrap(domain.ErrInvalidInstallation, "stat wine binary"))

	outcome, err := a.Run(t.Context(), runOptions("linear"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, outcome.Kind)
}

func TestApp_Run_SetupErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.RunOptions)
		want   error
	}{
		{
			name:   "missing wine binary",
			mutate: func(o *app.RunOptions) { o.WineBin = "" },
			want:   domain.ErrMissingWineBin,
		},
		{
			name:   "missing prefix",
			mutate: func(o *app.RunOptions) { o.Prefix = "" },
			want:   domain.ErrMissingPrefix,
		},
		{
			name:   "unknown wine type",
			mutate: func(o *app.RunOptions) { o.WineType = "dosbox" },
			want:   domain.ErrUnknownWineType,
		},
		{
			name:   "unknown output mode",
			mutate: func(o *app.RunOptions) { o.OutputMode = "fancy" },
			want:   domain.ErrUnknownOutputMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, m := setupAppTest(t)
			m.loader.EXPECT().Load("").Return(m.cfg, nil)

			opts := runOptions("linear")
			tt.mutate(&opts)

			_, err := a.Run(t.Context(), opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApp_Run_ConfigError(t *testing.T) {
	a, _, m := setupAppTest(t)

	loadErr := zerr.Wrap(domain.ErrConfigParseFailed, "yaml: line 2")
	m.loader.EXPECT().Load("/etc/tricks.yaml").Return(domain.Config{}, loadErr)

	opts := runOptions("linear")
	opts.ConfigPath = "/etc/tricks.yaml"

	_, err := a.Run(t.Context(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Download(t *testing.T) {
	t.Run("offline", func(t *testing.T) {
		a, _, m := setupAppTest(t)
		m.loader.EXPECT().Load("").Return(m.cfg, nil)
		m.connectivity.EXPECT().IsOnline(gomock.Any()).Return(false)

		result, err := a.Download(t.Context(), app.DownloadOptions{})
		require.NoError(t, err)
		assert.Equal(t, winetricks.ResultOffline, result)
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		a, _, m := setupAppTest(t)
		m.loader.EXPECT().Load("").Return(m.cfg, nil)
		m.connectivity.EXPECT().IsOnline(gomock.Any()).Return(true)
		m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("connection reset"))

		result, err := a.Download(t.Context(), app.DownloadOptions{})
		require.NoError(t, err)
		assert.Equal(t, winetricks.ResultFailed, result)
	})
}

func TestApp_Deps(t *testing.T) {
	a, _, m := setupAppTest(t)
	m.cfg.Dependencies = []string{"cabextract", "unzip"}

	m.loader.EXPECT().Load("").Return(m.cfg, nil)
	m.prober.EXPECT().Probe(gomock.Any(), "cabextract", gomock.Any()).Return(nil)
	m.prober.EXPECT().Probe(gomock.Any(), "unzip", gomock.Any()).
		Return(zerr.Wrap(domain.ErrDependencyMissing, "look up command"))

	report, err := a.Deps(t.Context(), app.DepsOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"unzip"}, report.Missing)
}

func TestApp_Clean(t *testing.T) {
	a, _, m := setupAppTest(t)
	m.installScript(t)
	m.loader.EXPECT().Load("").Return(m.cfg, nil)

	require.NoError(t, a.Clean(t.Context(), app.CleanOptions{}))
	_, err := os.Stat(m.cfg.ToolsDir)
	assert.True(t, os.IsNotExist(err))
}
