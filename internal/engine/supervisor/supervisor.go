// Package supervisor runs Winetricks against a Wine installation and reports
// its progress to a session.
package supervisor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogPrefix tags every log record written on behalf of the tool.
const LogPrefix = "Winetricks"

const (
	dependencyKey = "winetricks.dependencyMissing"
	skippedKey    = "winetricks.skipped"
	spanName      = "winetricks.run"
)

// Request describes one supervised run.
type Request struct {
	Installation domain.WineInstallation
	BasePrefix   string
	ToolPath     string
	Verbs        []string
	Dependencies []string

	FlushInterval  time.Duration
	BufferCapacity int
	PTY            bool

	// Translator localizes user-facing text. Nil keeps the built-in English text.
	Translator ports.Translator
}

// Supervisor starts Winetricks and turns its lifecycle into a single outcome.
type Supervisor struct {
	launcher  ports.ProcessLauncher
	prober    ports.CommandProber
	resolver  ports.WineResolver
	validator ports.InstallationValidator
	tracer    ports.Tracer
	logger    ports.Logger

	platform string
	environ  func() []string
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithPlatform overrides the operating system the supervisor believes it runs on.
func WithPlatform(goos string) Option {
	return func(s *Supervisor) {
		s.platform = goos
	}
}

// WithEnviron overrides the base environment passed to the tool.
func WithEnviron(environ func() []string) Option {
	return func(s *Supervisor) {
		s.environ = environ
	}
}

// NewSupervisor creates a new Supervisor with the given dependencies.
func NewSupervisor(
	launcher ports.ProcessLauncher,
	prober ports.CommandProber,
	resolver ports.WineResolver,
	validator ports.InstallationValidator,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...Option,
) *Supervisor {
	if p, ok := logger.(interface{ WithPrefix(string) ports.Logger }); ok {
		logger = p.WithPrefix(LogPrefix)
	}

	s := &Supervisor{
		launcher:  launcher,
		prober:    prober,
		resolver:  resolver,
		validator: validator,
		tracer:    tracer,
		logger:    logger,
		platform:  runtime.GOOS,
		environ:   os.Environ,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run is a handle on a started run.
type Run struct {
	completion *Completion
	report     <-chan domain.DependencyReport
}

// Done is closed once the run has its outcome.
func (r *Run) Done() <-chan struct{} {
	return r.completion.Done()
}

// Wait blocks until the run finished and returns its outcome.
func (r *Run) Wait() domain.RunOutcome {
	return r.completion.Wait()
}

// Outcome returns the outcome if the run already finished.
func (r *Run) Outcome() (domain.RunOutcome, bool) {
	return r.completion.Outcome()
}

// Dependencies receives the dependency report once every probe finished.
// For skipped runs it is closed without a value.
func (r *Run) Dependencies() <-chan domain.DependencyReport {
	return r.report
}

// Run starts a run and waits for its outcome.
func (s *Supervisor) Run(ctx context.Context, req Request, session ports.Session) domain.RunOutcome {
	return s.Start(ctx, req, session).Wait()
}

// Start launches Winetricks for req and returns immediately.
// Runs that fail a precondition resolve as skipped without spawning anything.
func (s *Supervisor) Start(ctx context.Context, req Request, session ports.Session) *Run {
	completion := NewCompletion()
	translator := ports.TranslatorOrDefault(req.Translator)

	if reason, ok := s.precondition(ctx, req); !ok {
		s.logger.Warn(translator.T(skippedKey, "Winetricks run skipped: {{reason}}", map[string]string{
			"reason": reason,
		}))
		completion.Resolve(domain.Skipped(reason))
		return &Run{completion: completion, report: closedReport()}
	}

	tool := s.resolver.Resolve(req.Installation, req.BasePrefix)
	env := domain.NewExecutionEnvironment(
		s.environ(),
		map[string]string{domain.EnvWinePrefix: tool.Prefix},
		filepath.Dir(tool.Bin),
	)

	ctx, span := s.tracer.Start(ctx, spanName, ports.WithAttributes(map[string]string{
		"wine.type":   string(tool.Type),
		"wine.bin":    tool.Bin,
		"wine.prefix": tool.Prefix,
		"tool.path":   req.ToolPath,
	}))

	aggregator := NewAggregator(session, req.BufferCapacity, req.FlushInterval)
	aggregator.Start()

	report, checked := relayReport(NewChecker(s.prober, req.Dependencies).Check(ctx, env, func(name string) {
		msg := translator.T(dependencyKey, domain.MissingDependencyMessage(name), map[string]string{
			"dependency": name,
		})
		s.logger.Warn(msg)
		aggregator.Push(msg)
		span.AddEvent("dependency.missing", map[string]string{"dependency": name})
	}))

	events := s.launcher.Launch(ctx, domain.ProcessSpec{
		Path: req.ToolPath,
		Args: append(slices.Clone(domain.WinetricksArgs), req.Verbs...),
		Env:  env,
		PTY:  req.PTY,
	})

	r := &runState{
		supervisor: s,
		aggregator: aggregator,
		reporter:   NewReporter(session, translator, s.logger),
		span:       span,
		completion: completion,
		checked:    checked,
	}
	go r.consume(ctx, events)

	return &Run{completion: completion, report: report}
}

// CheckDependencies probes deps against the environment the tool would run in.
func (s *Supervisor) CheckDependencies(
	ctx context.Context,
	inst domain.WineInstallation,
	basePrefix string,
	deps []string,
) domain.DependencyReport {
	var prepend []string
	if inst.Bin != "" {
		prepend = append(prepend, filepath.Dir(s.resolver.Resolve(inst, basePrefix).Bin))
	}
	env := domain.NewExecutionEnvironment(s.environ(), nil, prepend...)

	return <-NewChecker(s.prober, deps).Check(ctx, env, nil)
}

func (s *Supervisor) precondition(ctx context.Context, req Request) (string, bool) {
	if s.platform != "linux" {
		return "unsupported platform " + s.platform, false
	}
	if err := s.validator.Validate(ctx, req.Installation); err != nil {
		s.logger.Error(err)
		return "invalid wine installation", false
	}
	return "", true
}

// runState is owned by the goroutine consuming the event stream.
type runState struct {
	supervisor *Supervisor
	aggregator *Aggregator
	reporter   *Reporter
	span       ports.Span
	completion *Completion
	checked    <-chan struct{}
	finalized  bool
}

func (r *runState) consume(ctx context.Context, events <-chan domain.ProcessEvent) {
	log := r.supervisor.logger

	for ev := range events {
		if r.finalized {
			continue
		}

		switch ev.Kind {
		case domain.EventStdout:
			log.Info(ev.Data)
			r.record(ev.Data)
		case domain.EventStderr:
			log.Error(errors.New(ev.Data))
			r.record(ev.Data)
		case domain.EventError:
			r.fail(ctx, ev.Err)
		case domain.EventExit:
			if ev.ExitCode != 0 {
				log.Warn("exited with code " + strconv.Itoa(ev.ExitCode))
			}
			r.finalize(domain.Success(ev.ExitCode))
		case domain.EventClose:
			r.finalize(domain.StreamClosed())
		}
	}

	r.finalize(domain.StreamClosed())
}

func (r *runState) record(line string) {
	_, _ = r.span.Write([]byte(line + "\n"))
	r.aggregator.Push(line)
}

func (r *runState) fail(ctx context.Context, err error) {
	if err == nil {
		err = zerr.Wrap(domain.ErrProcessFailed, "process failed")
	}
	r.supervisor.logger.Error(err)
	r.span.RecordError(err)

	message := errorText(err)
	r.reporter.ReportToolError(ctx, message)
	r.finalize(domain.ToolError(message))
}

// finalize runs at most once per run.
func (r *runState) finalize(outcome domain.RunOutcome) {
	if r.finalized {
		return
	}
	r.finalized = true

	// Warnings of probes still running belong in the final flush.
	<-r.checked
	r.aggregator.Stop()

	r.span.SetAttribute("outcome", string(outcome.Kind))
	if outcome.Kind == domain.OutcomeSuccess {
		r.span.SetAttribute("exit_code", outcome.ExitCode)
	}
	r.span.End()

	r.completion.Resolve(outcome)
}

// errorText returns the message of the outermost error without its cause chain.
func errorText(err error) string {
	if m, ok := err.(interface{ Message() string }); ok && m.Message() != "" {
		return m.Message()
	}
	return err.Error()
}

// relayReport forwards the checker's report and closes checked once it arrived.
func relayReport(in <-chan domain.DependencyReport) (<-chan domain.DependencyReport, <-chan struct{}) {
	out := make(chan domain.DependencyReport, 1)
	checked := make(chan struct{})
	go func() {
		defer close(out)
		report, ok := <-in
		close(checked)
		if ok {
			out <- report
		}
	}()
	return out, checked
}

func closedReport() <-chan domain.DependencyReport {
	ch := make(chan domain.DependencyReport)
	close(ch)
	return ch
}
