package ports

import (
	"context"

	"go.trai.ch/tricks/internal/core/domain"
)

// WineResolver maps a Wine/Proton installation onto the binary and prefix to run with.
//
//go:generate mockgen -source=wine.go -destination=mocks/mock_wine.go -package=mocks
type WineResolver interface {
	Resolve(inst domain.WineInstallation, basePrefix string) domain.ToolInstallation
}

// InstallationValidator checks that an installation is usable before a run.
type InstallationValidator interface {
	// Validate returns domain.ErrInvalidInstallation (wrapped) when inst cannot be used.
	Validate(ctx context.Context, inst domain.WineInstallation) error
}
