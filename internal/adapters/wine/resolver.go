// Package wine resolves and validates Wine and Proton installations.
package wine

import (
	"os"
	"path/filepath"

	"go.trai.ch/tricks/internal/core/domain"
)

// protonPrefixDir is the directory inside a Proton compatdata folder that holds the wine prefix.
const protonPrefixDir = "pfx"

// protonWineCandidates are the locations of the wine binary relative to the
// Proton launcher script, newest layout first.
var protonWineCandidates = []string{
	filepath.Join("files", "bin", "wine"),
	filepath.Join("dist", "bin", "wine"),
}

// Resolver implements ports.WineResolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps inst onto the wine binary and WINEPREFIX to use for basePrefix.
// Proton keeps its prefix in <base>/pfx and ships wine next to the launcher script.
func (r *Resolver) Resolve(inst domain.WineInstallation, basePrefix string) domain.ToolInstallation {
	resolved := domain.ToolInstallation{
		Name:   inst.Name,
		Type:   inst.Type,
		Bin:    inst.Bin,
		Prefix: basePrefix,
	}

	if inst.Type == domain.WineTypeProton {
		resolved.Prefix = filepath.Join(basePrefix, protonPrefixDir)
		resolved.Bin = protonWine(inst.Bin)
	}

	return resolved
}

// protonWine returns the first existing candidate, or the newest layout if none exists.
func protonWine(protonBin string) string {
	dir := filepath.Dir(protonBin)
	for _, candidate := range protonWineCandidates {
		path := filepath.Join(dir, candidate)
		if isFile(path) {
			return path
		}
	}
	return filepath.Join(dir, protonWineCandidates[0])
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
