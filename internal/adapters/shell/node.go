package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tricks/internal/core/ports"
)

const (
	// LauncherNodeID is the unique identifier for the process launcher Graft node.
	LauncherNodeID graft.ID = "adapter.launcher"
	// ProberNodeID is the unique identifier for the command prober Graft node.
	ProberNodeID graft.ID = "adapter.prober"
)

func init() {
	graft.Register(graft.Node[ports.ProcessLauncher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessLauncher, error) {
			return NewLauncher(), nil
		},
	})

	graft.Register(graft.Node[ports.CommandProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.CommandProber, error) {
			return NewProber(), nil
		},
	})
}
