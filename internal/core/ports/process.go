// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/tricks/internal/core/domain"
)

// ProcessLauncher starts external processes and publishes their lifecycle as events.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessLauncher interface {
	// Launch starts the process described by spec.
	//
	// Output lines arrive as EventStdout/EventStderr. A spawn or runtime failure
	// is delivered as EventError instead of a returned error. A clean run ends
	// with EventExit followed by EventClose. The channel is closed after the last event.
	Launch(ctx context.Context, spec domain.ProcessSpec) <-chan domain.ProcessEvent
}

// CommandProber checks whether host commands are available.
type CommandProber interface {
	// Probe returns nil when name resolves to an executable on the PATH of env.
	Probe(ctx context.Context, name string, env domain.ExecutionEnvironment) error
}
