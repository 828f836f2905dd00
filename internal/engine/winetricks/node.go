package winetricks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tricks/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tricks/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "engine.downloader"

func init() {
	graft.Register(graft.Node[*Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Downloader, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
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

			return NewDownloader(fetcher, tracer, log), nil
		},
	})
}
