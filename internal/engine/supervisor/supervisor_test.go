package supervisor_test

import (
	"context"
	"fmt"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/engine/supervisor"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_CleanRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 16)
		var spec domain.ProcessSpec
		m.launchWith(events, &spec)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		lines := []string{
			"Executing w_do_call vcrun2019",
			"Using native override for following DLLs: msvcp140",
			"Downloading vc_redist.x64.exe",
			"Executing wine vc_redist.x64.exe /q",
			"Installing",
		}
		for _, line := range lines {
			events <- stdout(line)
		}
		events <- exited(0)
		events <- closed()
		close(events)

		outcome := run.Wait()
		synctest.Wait()

		assert.Equal(t, domain.Success(0), outcome)
		progress := session.Progress()
		require.NotEmpty(t, progress)
		assert.Equal(t, lines, progress[len(progress)-1])
		for _, ev := range session.Events() {
			assert.Equal(t, domain.ProgressEvent, ev)
		}
		assert.Empty(t, session.Dialogs())

		assert.Equal(t, testToolPath, spec.Path)
		assert.Equal(t, []string{"--force", "-q", "vcrun2019"}, spec.Args)
		prefix, _ := spec.Env.Get(domain.EnvWinePrefix)
		assert.Equal(t, testPrefix, prefix)
		path, _ := spec.Env.Get(domain.EnvPath)
		assert.Equal(t, "/opt/wine/bin:/usr/bin", path)
		home, _ := spec.Env.Get("HOME")
		assert.Equal(t, "/home/player", home)
	})
}

func TestSupervisor_NonZeroExitIsSuccess(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 4)
		m.launchWith(events, nil)

		run := sup.Start(t.Context(), testRequest(), &recordingSession{})
		events <- exited(1)
		events <- closed()
		close(events)

		assert.Equal(t, domain.Success(1), run.Wait())
	})
}

func TestSupervisor_SpawnFailureShowsDialog(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 4)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		events <- domain.ProcessEvent{
			Kind:     domain.EventError,
			Err:      zerr.With(zerr.Wrap(domain.ErrProcessStartFailed, "spawn /tools/winetricks ENOENT"), "path", testToolPath),
			ExitCode: -1,
		}
		close(events)

		outcome := run.Wait()
		assert.Equal(t, domain.OutcomeToolError, outcome.Kind)
		assert.Equal(t, "spawn /tools/winetricks ENOENT", outcome.Message)

		dialogs := session.Dialogs()
		require.Len(t, dialogs, 1)
		assert.Equal(t, domain.Dialog{
			Title:   "Winetricks error",
			Message: "Winetricks returned the following error during execution:\nspawn /tools/winetricks ENOENT",
			Type:    domain.DialogError,
		}, dialogs[0])

		time.Sleep(5 * domain.DefaultFlushInterval)
		assert.Empty(t, session.Progress(), "a stopped run emits nothing")
	})
}

func TestSupervisor_BufferKeepsMostRecentLines(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 256)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		for i := range 150 {
			events <- stdout(fmt.Sprintf("line %d", i))
		}

		time.Sleep(domain.DefaultFlushInterval + 500*time.Millisecond)

		progress := session.Progress()
		require.Len(t, progress, 1)
		require.Len(t, progress[0], domain.DefaultProgressCapacity)
		assert.Equal(t, "line 50", progress[0][0])
		assert.Equal(t, "line 149", progress[0][99])

		events <- exited(0)
		events <- closed()
		close(events)
		run.Wait()
	})
}

func TestSupervisor_IdleTicksEmitNothing(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 4)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		events <- stdout("Executing cabextract")
		time.Sleep(domain.DefaultFlushInterval + 500*time.Millisecond)
		require.Len(t, session.Progress(), 1)

		time.Sleep(5 * domain.DefaultFlushInterval)
		assert.Len(t, session.Progress(), 1)

		events <- exited(0)
		close(events)
		run.Wait()

		assert.Len(t, session.Progress(), 1, "nothing new to flush on stop")
	})
}

func TestSupervisor_LinesWithinIntervalAreCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 16)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		for i := range 10 {
			events <- stdout(fmt.Sprintf("line %d", i))
			time.Sleep(50 * time.Millisecond)
		}
		time.Sleep(domain.DefaultFlushInterval)

		progress := session.Progress()
		require.Len(t, progress, 1)
		assert.Len(t, progress[0], 10)

		close(events)
		assert.Equal(t, domain.StreamClosed(), run.Wait())
	})
}

func TestSupervisor_StderrReachesFeed(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 4)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		events <- stdout("Executing w_do_call corefonts")
		events <- stderr("warning: font already installed")
		events <- exited(0)
		close(events)
		run.Wait()

		progress := session.Progress()
		require.NotEmpty(t, progress)
		assert.Equal(t, []string{
			"Executing w_do_call corefonts",
			"warning: font already installed",
		}, progress[len(progress)-1])
	})
}

func TestSupervisor_SingleFinalization(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.allPresent()

		events := make(chan domain.ProcessEvent, 8)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		events <- exited(0)
		events <- domain.ProcessEvent{Kind: domain.EventError, Err: zerr.New("late failure")}
		events <- stdout("after exit")
		events <- closed()
		close(events)

		assert.Equal(t, domain.Success(0), run.Wait())
		synctest.Wait()

		assert.Empty(t, session.Dialogs(), "terminal events after the first are ignored")
		assert.Empty(t, session.Progress())
		outcome, ok := run.Outcome()
		assert.True(t, ok)
		assert.Equal(t, domain.Success(0), outcome)
	})
}

func TestSupervisor_UnsupportedPlatformSkips(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, _ := setupSupervisorTest(t, supervisor.WithPlatform("darwin"))

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		select {
		case <-run.Done():
		default:
			t.Fatal("skipped run must complete immediately")
		}

		outcome := run.Wait()
		assert.Equal(t, domain.OutcomeSkipped, outcome.Kind)
		assert.Contains(t, outcome.Message, "darwin")
		assert.Empty(t, session.Progress())

		_, ok := <-run.Dependencies()
		assert.False(t, ok)
	})
}

func TestSupervisor_InvalidInstallationSkips(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(zerr.With(zerr.Wrap(domain.ErrInvalidInstallation, "stat wine binary"), "path", testBin))

		run := sup.Start(t.Context(), testRequest(), &recordingSession{})

		outcome := run.Wait()
		assert.Equal(t, domain.OutcomeSkipped, outcome.Kind)
	})
}

func TestSupervisor_MissingDependenciesWarnInFeed(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sup, m := setupSupervisorTest(t)
		m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
		m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(zerr.Wrap(domain.ErrDependencyMissing, "look up command")).
			Times(len(domain.RequiredDependencies))

		events := make(chan domain.ProcessEvent, 8)
		m.launchWith(events, nil)

		session := &recordingSession{}
		run := sup.Start(t.Context(), testRequest(), session)

		report := <-run.Dependencies()
		assert.ElementsMatch(t, domain.RequiredDependencies, report.Missing)

		events <- stdout("Executing w_do_call d3dx9")
		events <- stdout("Installing")
		events <- exited(0)
		close(events)

		assert.Equal(t, domain.Success(0), run.Wait())

		progress := session.Progress()
		require.NotEmpty(t, progress)
		feed := progress[len(progress)-1]
		require.Len(t, feed, len(domain.RequiredDependencies)+2)
		assert.ElementsMatch(t, report.Messages(), feed[:len(domain.RequiredDependencies)])
		assert.Equal(t, []string{"Executing w_do_call d3dx9", "Installing"}, feed[len(domain.RequiredDependencies):])
	})
}

func TestSupervisor_SlowProbesReachFinalFlush(t *testing.T) {
	tests := []struct {
		name     string
		terminal domain.ProcessEvent
		want     domain.RunOutcome
	}{
		{
			name:     "quick exit",
			terminal: exited(0),
			want:     domain.Success(0),
		},
		{
			name:     "spawn failure",
			terminal: domain.ProcessEvent{Kind: domain.EventError, Err: zerr.Wrap(domain.ErrProcessStartFailed, "spawn ENOENT")},
			want:     domain.ToolError("spawn ENOENT"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				sup, m := setupSupervisorTest(t)
				m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
				m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, string, domain.ExecutionEnvironment) error {
						time.Sleep(5 * time.Millisecond)
						return zerr.Wrap(domain.ErrDependencyMissing, "look up command")
					}).
					Times(len(domain.RequiredDependencies))

				events := make(chan domain.ProcessEvent, 4)
				events <- stdout("hello")
				events <- tt.terminal
				close(events)
				m.launchWith(events, nil)

				session := &recordingSession{}
				run := sup.Start(t.Context(), testRequest(), session)

				assert.Equal(t, tt.want, run.Wait())

				want := []string{"hello"}
				for _, dep := range domain.RequiredDependencies {
					want = append(want, domain.MissingDependencyMessage(dep))
				}
				progress := session.Progress()
				require.NotEmpty(t, progress)
				assert.ElementsMatch(t, want, progress[len(progress)-1])
			})
		})
	}
}

func TestSupervisor_CheckDependencies(t *testing.T) {
	sup, m := setupSupervisorTest(t)
	m.prober.EXPECT().Probe(gomock.Any(), "cabextract", gomock.Any()).
		Return(zerr.Wrap(domain.ErrDependencyMissing, "look up command"))
	m.prober.EXPECT().Probe(gomock.Any(), "wine", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, env domain.ExecutionEnvironment) error {
			path, _ := env.Get(domain.EnvPath)
			assert.Equal(t, "/opt/wine/bin:/usr/bin", path)
			return nil
		})

	report := sup.CheckDependencies(t.Context(), testRequest().Installation, testPrefix, []string{"cabextract", "wine"})
	assert.Equal(t, []string{"cabextract"}, report.Missing)
}
