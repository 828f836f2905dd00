package shell

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prober implements ports.CommandProber by searching the PATH of an environment,
// the way `which` would, without spawning a shell.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe returns nil when name resolves to an executable on the PATH of env.
func (p *Prober) Probe(ctx context.Context, name string, env domain.ExecutionEnvironment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, _ := env.Get(domain.EnvPath)

	if strings.ContainsRune(name, filepath.Separator) {
		if err := findExecutable(name); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrDependencyMissing, "look up command"), "command", name)
		}
		return nil
	}

	if _, err := lookPath(name, path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDependencyMissing, "look up command"), "command", name)
	}
	return nil
}

// lookPath searches for an executable in the directories of a PATH list.
func lookPath(file, pathList string) (string, error) {
	if pathList == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
