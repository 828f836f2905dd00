package supervisor

import (
	"sync"

	"go.trai.ch/tricks/internal/core/domain"
)

// Completion is a single-shot outcome. The first Resolve wins, later calls are ignored.
type Completion struct {
	once    sync.Once
	done    chan struct{}
	outcome domain.RunOutcome
}

// NewCompletion returns an unresolved Completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Resolve sets the outcome. It reports false if the completion was already resolved.
func (c *Completion) Resolve(outcome domain.RunOutcome) bool {
	resolved := false
	c.once.Do(func() {
		c.outcome = outcome
		close(c.done)
		resolved = true
	})
	return resolved
}

// Done is closed once the completion is resolved.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the completion is resolved and returns the outcome.
func (c *Completion) Wait() domain.RunOutcome {
	<-c.done
	return c.outcome
}

// Outcome returns the outcome without blocking. ok is false while unresolved.
func (c *Completion) Outcome() (outcome domain.RunOutcome, ok bool) {
	select {
	case <-c.done:
		return c.outcome, true
	default:
		return domain.RunOutcome{}, false
	}
}
