// Package online reports network connectivity by dialing a well-known endpoint.
package online

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultCacheTTL is how long a connectivity result is reused.
const DefaultCacheTTL = 30 * time.Second

// Dialer opens network connections.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Monitor implements ports.Connectivity.
type Monitor struct {
	dialer  Dialer
	address string
	timeout time.Duration
	ttl     time.Duration
	clock   clockwork.Clock

	mu        sync.Mutex
	online    bool
	checkedAt time.Time
	checked   bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithDialer replaces the network dialer.
func WithDialer(d Dialer) Option {
	return func(m *Monitor) { m.dialer = d }
}

// WithCacheTTL overrides DefaultCacheTTL. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(m *Monitor) { m.ttl = ttl }
}

// WithClock replaces the time source.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Monitor) { m.clock = clock }
}

// NewMonitor creates a Monitor that dials address (host:port) with timeout.
func NewMonitor(address string, timeout time.Duration, opts ...Option) *Monitor {
	m := &Monitor{
		dialer:  &net.Dialer{},
		address: address,
		timeout: timeout,
		ttl:     DefaultCacheTTL,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsOnline reports whether address accepted a TCP connection within the timeout.
func (m *Monitor) IsOnline(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checked && m.clock.Since(m.checkedAt) < m.ttl {
		return m.online
	}

	dialCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dialer.DialContext(dialCtx, "tcp", m.address)
	m.online = err == nil
	if conn != nil {
		_ = conn.Close()
	}

	// A canceled caller says nothing about the network.
	if ctx.Err() == nil {
		m.checked = true
		m.checkedAt = m.clock.Now()
	}

	return m.online
}
