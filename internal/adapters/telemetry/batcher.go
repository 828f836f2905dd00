// Package telemetry records supervised runs as OpenTelemetry spans.
package telemetry

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultMaxLines is the number of buffered lines that forces a batch.
	DefaultMaxLines = 64
	// DefaultFlushEvery is how often buffered lines are emitted as a batch.
	DefaultFlushEvery = 250 * time.Millisecond
)

// LineBatcher splits process output into lines and hands them to onFlush in
// batches, so a chatty process does not produce one span event per line.
// A trailing partial line waits for its newline until Close.
type LineBatcher struct {
	maxLines int
	every    time.Duration
	onFlush  func([]string)

	mu      sync.Mutex
	lines   []string
	partial []byte
	ticker  clockwork.Ticker
	stopCh  chan struct{}
	closed  bool
}

// BatchOption configures a LineBatcher.
type BatchOption func(*batchConfig)

type batchConfig struct {
	maxLines int
	every    time.Duration
	clock    clockwork.Clock
}

// WithMaxLines sets the number of buffered lines that forces a batch.
func WithMaxLines(n int) BatchOption {
	return func(c *batchConfig) { c.maxLines = n }
}

// WithFlushEvery sets the flush interval.
func WithFlushEvery(d time.Duration) BatchOption {
	return func(c *batchConfig) { c.every = d }
}

// WithBatchClock replaces the time source of the flush ticker.
func WithBatchClock(clock clockwork.Clock) BatchOption {
	return func(c *batchConfig) { c.clock = clock }
}

// NewLineBatcher starts a LineBatcher. Close stops its ticker.
func NewLineBatcher(onFlush func([]string), opts ...BatchOption) *LineBatcher {
	cfg := batchConfig{
		maxLines: DefaultMaxLines,
		every:    DefaultFlushEvery,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxLines <= 0 {
		cfg.maxLines = DefaultMaxLines
	}
	if cfg.every <= 0 {
		cfg.every = DefaultFlushEvery
	}

	b := &LineBatcher{
		maxLines: cfg.maxLines,
		every:    cfg.every,
		onFlush:  onFlush,
		ticker:   cfg.clock.NewTicker(cfg.every),
		stopCh:   make(chan struct{}),
	}
	go b.run()

	return b
}

// Write appends p to the pending output. Complete lines are queued with their
// line ending stripped.
func (b *LineBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, zerr.Wrap(domain.ErrSessionClosed, "write span output")
	}

	data := append(b.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		b.lines = append(b.lines, strings.TrimSuffix(string(data[:i]), "\r"))
		data = data[i+1:]
	}
	b.partial = bytes.Clone(data)

	if len(b.lines) >= b.maxLines {
		b.flushLocked()
		b.ticker.Reset(b.every)
	}

	return len(p), nil
}

// Flush emits the complete lines queued so far.
func (b *LineBatcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.flushLocked()
}

// Close stops the ticker and emits everything left, including a partial line.
func (b *LineBatcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	close(b.stopCh)
	if len(b.partial) > 0 {
		b.lines = append(b.lines, strings.TrimSuffix(string(b.partial), "\r"))
		b.partial = nil
	}
	b.flushLocked()
	return nil
}

func (b *LineBatcher) run() {
	for {
		select {
		case <-b.ticker.Chan():
			b.Flush()
		case <-b.stopCh:
			b.ticker.Stop()
			return
		}
	}
}

// flushLocked runs onFlush under mu so batches stay ordered.
func (b *LineBatcher) flushLocked() {
	if len(b.lines) == 0 {
		return
	}

	batch := b.lines
	b.lines = nil

	if b.onFlush != nil {
		b.onFlush(batch)
	}
}
