package wine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tricks/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the wine resolver Graft node.
	ResolverNodeID graft.ID = "adapter.wine_resolver"
	// ValidatorNodeID is the unique identifier for the installation validator Graft node.
	ValidatorNodeID graft.ID = "adapter.wine_validator"
)

func init() {
	graft.Register(graft.Node[ports.WineResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WineResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.InstallationValidator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallationValidator, error) {
			return NewValidator(), nil
		},
	})
}
