// Package shell launches external tools and probes the host for commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultWaitDelay bounds how long output is drained after the process exited.
// Wine starts wineserver in the background, which can keep the pipes open.
const DefaultWaitDelay = 2 * time.Second

const eventBufferSize = 64

// Launcher implements ports.ProcessLauncher using os/exec, or a PTY when the spec asks for one.
type Launcher struct {
	waitDelay time.Duration
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithWaitDelay overrides DefaultWaitDelay.
func WithWaitDelay(d time.Duration) LauncherOption {
	return func(l *Launcher) {
		l.waitDelay = d
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{waitDelay: DefaultWaitDelay}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts the process described by spec and streams its lifecycle.
// The caller must drain the returned channel until it is closed.
func (l *Launcher) Launch(ctx context.Context, spec domain.ProcessSpec) <-chan domain.ProcessEvent {
	events := make(chan domain.ProcessEvent, eventBufferSize)
	go func() {
		defer close(events)
		l.run(ctx, spec, func(ev domain.ProcessEvent) { events <- ev })
	}()
	return events
}

func (l *Launcher) run(ctx context.Context, spec domain.ProcessSpec, emit func(domain.ProcessEvent)) {
	env := spec.Env.Environ()
	if spec.Env.Len() == 0 {
		env = os.Environ()
	}

	executable := spec.Path
	if !strings.ContainsRune(executable, filepath.Separator) {
		path, _ := spec.Env.Get(domain.EnvPath)
		if lp, err := lookPath(executable, path); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, spec.Args...) //nolint:gosec // path comes from the tools directory
	cmd.Env = env
	cmd.Dir = spec.Dir
	cmd.WaitDelay = l.waitDelay

	stdout := &lineWriter{kind: domain.EventStdout, emit: emit}
	stderr := &lineWriter{kind: domain.EventStderr, emit: emit}

	var err error
	if spec.PTY {
		err = l.runPTY(cmd, stdout)
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		if err = cmd.Start(); err != nil {
			err = startError(err, spec.Path)
		} else {
			err = cmd.Wait()
		}
	}

	stdout.Flush()
	stderr.Flush()

	if startErr, ok := asStartError(err); ok {
		emit(domain.ProcessEvent{Kind: domain.EventError, Err: startErr, ExitCode: -1})
		return
	}

	exitCode, waitErr := exitStatus(cmd, err)
	if waitErr != nil {
		emit(domain.ProcessEvent{
			Kind:     domain.EventError,
			Err:      zerr.With(zerr.Wrap(domain.ErrProcessFailed, waitErr.Error()), "path", spec.Path),
			ExitCode: -1,
		})
		return
	}

	emit(domain.ProcessEvent{Kind: domain.EventExit, ExitCode: exitCode})
	emit(domain.ProcessEvent{Kind: domain.EventClose})
}

// runPTY runs cmd attached to a pseudo-terminal. Both streams arrive merged on out.
func (l *Launcher) runPTY(cmd *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return startError(err, cmd.Path)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once every slave handle is closed.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()

	select {
	case <-ioDone:
	case <-time.After(l.waitDelay):
	}
	_ = ptmx.Close()
	<-ioDone

	return err
}

// startFailure marks errors that happened before the process was running.
type startFailure struct {
	err error
}

func (s *startFailure) Error() string { return s.err.Error() }
func (s *startFailure) Unwrap() error { return s.err }

func startError(err error, path string) error {
	return &startFailure{err: zerr.With(zerr.Wrap(domain.ErrProcessStartFailed, err.Error()), "path", path)}
}

func asStartError(err error) (error, bool) {
	var sf *startFailure
	if errors.As(err, &sf) {
		return sf.err, true
	}
	return nil, false
}

// exitStatus maps the result of Wait to an exit code.
// A non-zero exit is not a failure, only errors that prevented waiting are.
func exitStatus(cmd *exec.Cmd, err error) (int, error) {
	if err == nil {
		return cmd.ProcessState.ExitCode(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode(), nil
	}

	return -1, err
}

// lineWriter splits a byte stream into lines and emits one event per line.
type lineWriter struct {
	kind domain.ProcessEventKind
	emit func(domain.ProcessEvent)

	mu  sync.Mutex
	buf []byte
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emitLine(w.buf)
		w.buf = nil
	}
}

func (w *lineWriter) emitLine(line []byte) {
	// PTYs terminate lines with \r\n.
	msg := strings.TrimSuffix(string(line), "\r")
	w.emit(domain.ProcessEvent{Kind: w.kind, Data: msg})
}
