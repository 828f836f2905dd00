package wine

import (
	"context"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validator implements ports.InstallationValidator by checking the files an installation needs.
type Validator struct {
	resolver *Resolver
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{resolver: NewResolver()}
}

// Validate returns a wrapped domain.ErrInvalidInstallation when inst cannot be used.
func (v *Validator) Validate(ctx context.Context, inst domain.WineInstallation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if inst.Bin == "" {
		return zerr.Wrap(domain.ErrMissingWineBin, "validate installation")
	}

	if !isFile(inst.Bin) {
		return invalid("binary not found", inst.Bin)
	}

	switch inst.Type {
	case domain.WineTypeProton:
		if wine := protonWine(inst.Bin); !isFile(wine) {
			return invalid("proton wine binary not found", wine)
		}
	case domain.WineTypeWine, domain.WineTypeCrossover:
		if inst.Wineserver != "" && !isFile(inst.Wineserver) {
			return invalid("wineserver not found", inst.Wineserver)
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownWineType, "validate installation"), "type", string(inst.Type))
	}

	return nil
}

func invalid(reason, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidInstallation, reason), "path", path)
}
