package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// WineType identifies the flavour of a compatibility layer.
type WineType string

const (
	// WineTypeWine is a plain Wine build.
	WineTypeWine WineType = "wine"
	// WineTypeProton is a Proton build whose wine binary lives under files/ or dist/.
	WineTypeProton WineType = "proton"
	// WineTypeCrossover is a CrossOver installation.
	WineTypeCrossover WineType = "crossover"
)

// ParseWineType converts s to a WineType. An empty string means plain Wine.
func ParseWineType(s string) (WineType, error) {
	switch WineType(strings.ToLower(strings.TrimSpace(s))) {
	case "", WineTypeWine:
		return WineTypeWine, nil
	case WineTypeProton:
		return WineTypeProton, nil
	case WineTypeCrossover:
		return WineTypeCrossover, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownWineType, "parse wine type"), "type", s)
	}
}

// WineInstallation describes a Wine or Proton build as selected by the user.
type WineInstallation struct {
	Name       string
	Type       WineType
	Bin        string
	Wineserver string
}

// ToolInstallation is a WineInstallation resolved against a base prefix.
// It carries the wine binary to put on PATH and the WINEPREFIX to use.
type ToolInstallation struct {
	Name   string
	Type   WineType
	Bin    string
	Prefix string
}
