package supervisor

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Checker probes host commands the tool relies on.
type Checker struct {
	prober ports.CommandProber
	deps   []string
}

// NewChecker creates a Checker for deps. An empty list checks nothing.
func NewChecker(prober ports.CommandProber, deps []string) *Checker {
	return &Checker{prober: prober, deps: slices.Clone(deps)}
}

// Check probes every dependency concurrently against the PATH of env.
// onMissing runs as soon as a probe fails and may be called from several goroutines.
// The returned channel receives the full report once every probe finished, then closes.
func (c *Checker) Check(
	ctx context.Context,
	env domain.ExecutionEnvironment,
	onMissing func(name string),
) <-chan domain.DependencyReport {
	out := make(chan domain.DependencyReport, 1)

	var (
		mu     sync.Mutex
		report domain.DependencyReport
		g      errgroup.Group
	)

	for _, dep := range c.deps {
		g.Go(func() error {
			err := c.prober.Probe(ctx, dep, env)
			if !errors.Is(err, domain.ErrDependencyMissing) {
				return nil
			}

			mu.Lock()
			report.Add(dep)
			mu.Unlock()

			if onMissing != nil {
				onMissing(dep)
			}
			return nil
		})
	}

	go func() {
		defer close(out)
		_ = g.Wait()
		out <- report
	}()

	return out
}
