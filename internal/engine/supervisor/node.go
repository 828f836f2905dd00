package supervisor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tricks/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/adapters/wine"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/core/ports"
)

// NodeID is the unique identifier for the supervisor Graft node.
const NodeID graft.ID = "engine.supervisor"

func init() {
	graft.Register(graft.Node[*Supervisor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.LauncherNodeID,
			shell.ProberNodeID,
			wine.ResolverNodeID,
			wine.ValidatorNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Supervisor, error) {
			launcher, err := graft.Dep[ports.ProcessLauncher](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.CommandProber](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.WineResolver](ctx)
			if err != nil {
				return nil, err
			}

			validator, err := graft.Dep[ports.InstallationValidator](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewSupervisor(launcher, prober, resolver, validator, tracer, log), nil
		},
	})
}
