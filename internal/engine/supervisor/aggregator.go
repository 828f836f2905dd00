package supervisor

import (
	"sync"
	"time"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
)

// Aggregator buffers output lines and forwards the whole feed to a session at
// a fixed cadence, only when something changed since the last emission.
type Aggregator struct {
	session  ports.Session
	interval time.Duration

	mu      sync.Mutex
	buffer  *domain.ProgressBuffer
	stopped bool

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	loopDone  chan struct{}
}

// NewAggregator creates an Aggregator keeping capacity lines and emitting every interval.
func NewAggregator(session ports.Session, capacity int, interval time.Duration) *Aggregator {
	if interval <= 0 {
		interval = domain.DefaultFlushInterval
	}
	return &Aggregator{
		session:  session,
		interval: interval,
		buffer:   domain.NewProgressBuffer(capacity),
		stopCh:   make(chan struct{}),
		loopDone: make(chan struct{}),
	}
}

// Start begins the emission cadence.
func (a *Aggregator) Start() {
	a.startOnce.Do(func() {
		go a.run()
	})
}

func (a *Aggregator) run() {
	defer close(a.loopDone)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.Flush()
		case <-a.stopCh:
			return
		}
	}
}

// Push appends a line to the feed. Lines pushed after Stop are dropped.
func (a *Aggregator) Push(line string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	a.buffer.Push(line)
}

// Flush emits the feed if it changed since the last emission.
// The session is called under the lock so emissions never go back in time.
func (a *Aggregator) Flush() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	a.flushLocked()
}

func (a *Aggregator) flushLocked() {
	if lines, ok := a.buffer.TakeIfDirty(); ok {
		a.session.SendProgress(domain.ProgressEvent, lines)
	}
}

// Stop ends the cadence with one last emission of pending lines.
// Nothing is emitted after Stop returns. It reports false when already stopped.
func (a *Aggregator) Stop() bool {
	first := false
	a.stopOnce.Do(func() {
		first = true
		close(a.stopCh)
		a.startOnce.Do(func() { close(a.loopDone) })
		<-a.loopDone

		a.mu.Lock()
		defer a.mu.Unlock()
		a.flushLocked()
		a.stopped = true
	})
	return first
}

// Snapshot returns the current feed, oldest first.
func (a *Aggregator) Snapshot() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer.Snapshot()
}
