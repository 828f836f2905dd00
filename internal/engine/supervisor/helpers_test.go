package supervisor_test

import (
	"context"
	"sync"
	"testing"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/tricks/internal/core/ports/mocks"
	"go.trai.ch/tricks/internal/engine/supervisor"
	"go.uber.org/mock/gomock"
)

const (
	testToolPath = "/tools/winetricks"
	testBin      = "/opt/wine/bin/wine"
	testPrefix   = "/games/pfx"
)

// recordingSession keeps everything a run sent to it.
type recordingSession struct {
	mu       sync.Mutex
	events   []string
	progress [][]string
	dialogs  []domain.Dialog
}

func (s *recordingSession) SendProgress(event string, lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	s.progress = append(s.progress, lines)
}

func (s *recordingSession) ShowDialog(_ context.Context, dialog domain.Dialog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = append(s.dialogs, dialog)
	return nil
}

func (s *recordingSession) Progress() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.progress))
	copy(out, s.progress)
	return out
}

func (s *recordingSession) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *recordingSession) Dialogs() []domain.Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Dialog(nil), s.dialogs...)
}

type supervisorTestMocks struct {
	launcher  *mocks.MockProcessLauncher
	prober    *mocks.MockCommandProber
	resolver  *mocks.MockWineResolver
	validator *mocks.MockInstallationValidator
	tracer    *mocks.MockTracer
	span      *mocks.MockSpan
	logger    *mocks.MockLogger
}

// setupSupervisorTest creates a supervisor with permissive mocks for the ambient ports.
func setupSupervisorTest(t *testing.T, opts ...supervisor.Option) (*supervisor.Supervisor, supervisorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := supervisorTestMocks{
		launcher:  mocks.NewMockProcessLauncher(ctrl),
		prober:    mocks.NewMockCommandProber(ctrl),
		resolver:  mocks.NewMockWineResolver(ctrl),
		validator: mocks.NewMockInstallationValidator(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		span:      mocks.NewMockSpan(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) { return len(p), nil }).AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.span.EXPECT().AddEvent(gomock.Any(), gomock.Any()).AnyTimes()

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.ToolInstallation{
		Type:   domain.WineTypeWine,
		Bin:    testBin,
		Prefix: testPrefix,
	}).AnyTimes()

	opts = append([]supervisor.Option{
		supervisor.WithPlatform("linux"),
		supervisor.WithEnviron(func() []string { return []string{"PATH=/usr/bin", "HOME=/home/player"} }),
	}, opts...)

	s := supervisor.NewSupervisor(m.launcher, m.prober, m.resolver, m.validator, m.tracer, m.logger, opts...)
	return s, m
}

// allPresent makes every dependency probe succeed and the installation valid.
func (m supervisorTestMocks) allPresent() {
	m.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// launchWith makes the launcher return events and records the spec it was given.
func (m supervisorTestMocks) launchWith(events <-chan domain.ProcessEvent, spec *domain.ProcessSpec) {
	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.ProcessSpec) <-chan domain.ProcessEvent {
			if spec != nil {
				*spec = s
			}
			return events
		},
	)
}

func testRequest() supervisor.Request {
	return supervisor.Request{
		Installation:   domain.WineInstallation{Name: "wine-ge", Type: domain.WineTypeWine, Bin: testBin},
		BasePrefix:     testPrefix,
		ToolPath:       testToolPath,
		Verbs:          []string{"vcrun2019"},
		Dependencies:   domain.RequiredDependencies,
		FlushInterval:  domain.DefaultFlushInterval,
		BufferCapacity: domain.DefaultProgressCapacity,
		Translator:     domain.FallbackTranslator{},
	}
}

func stdout(line string) domain.ProcessEvent {
	return domain.ProcessEvent{Kind: domain.EventStdout, Data: line}
}

func stderr(line string) domain.ProcessEvent {
	return domain.ProcessEvent{Kind: domain.EventStderr, Data: line}
}

func exited(code int) domain.ProcessEvent {
	return domain.ProcessEvent{Kind: domain.EventExit, ExitCode: code}
}

func closed() domain.ProcessEvent {
	return domain.ProcessEvent{Kind: domain.EventClose}
}
