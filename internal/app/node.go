package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tricks/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/tricks/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/tricks/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/tricks/internal/engine/supervisor"
	"go.trai.ch/tricks/internal/engine/winetricks"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the CLI needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			supervisor.NodeID,
			winetricks.NodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			sup, err := graft.Dep[*supervisor.Supervisor](ctx)
			if err != nil {
				return nil, err
			}

			downloader, err := graft.Dep[*winetricks.Downloader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			mode, err := graft.Dep[detector.OutputMode](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, sup, downloader, log, mode), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
