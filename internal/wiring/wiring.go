// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tricks/internal/adapters/config"
	_ "go.trai.ch/tricks/internal/adapters/detector"
	_ "go.trai.ch/tricks/internal/adapters/fetch"
	_ "go.trai.ch/tricks/internal/adapters/logger"
	_ "go.trai.ch/tricks/internal/adapters/shell"
	_ "go.trai.ch/tricks/internal/adapters/telemetry"
	_ "go.trai.ch/tricks/internal/adapters/wine"
	// Register app and engine nodes.
	_ "go.trai.ch/tricks/internal/app"
	_ "go.trai.ch/tricks/internal/engine/supervisor"
	_ "go.trai.ch/tricks/internal/engine/winetricks"
)
