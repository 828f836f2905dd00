// Package config provides the configuration loader for tricks.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the configuration file at path and applies it over the defaults.
// An empty path means domain.DefaultConfigPath(). A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		path = domain.DefaultConfigPath()
	}

	data, err := l.FS.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Tricksfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if err := l.apply(&cfg, &file, filepath.Dir(path)); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

//nolint:cyclop // one branch per optional field
func (l *Loader) apply(cfg *domain.Config, file *Tricksfile, configDir string) error {
	if file.ToolsDir != "" {
		cfg.ToolsDir = resolveDir(configDir, file.ToolsDir)
	}
	if file.DownloadURL != "" {
		cfg.DownloadURL = file.DownloadURL
	}

	var err error
	if cfg.DownloadTimeout, err = parseDuration("downloadTimeout", file.DownloadTimeout, cfg.DownloadTimeout); err != nil {
		return err
	}
	if cfg.FlushInterval, err = parseDuration("flushInterval", file.FlushInterval, cfg.FlushInterval); err != nil {
		return err
	}

	if file.BufferCapacity != nil {
		if *file.BufferCapacity <= 0 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidCapacity, "bufferCapacity"), "value", *file.BufferCapacity)
		}
		cfg.BufferCapacity = *file.BufferCapacity
	}

	if file.Dependencies != nil {
		cfg.Dependencies = file.Dependencies
		if len(file.Dependencies) == 0 {
			l.Logger.Warn("dependency check disabled: 'dependencies' is empty")
		}
	}

	if file.Language != "" {
		cfg.Language = file.Language
	}
	if file.PTY != nil {
		cfg.PTY = *file.PTY
	}

	if file.Online != nil {
		if file.Online.Address != "" {
			cfg.OnlineAddress = file.Online.Address
		}
		if cfg.OnlineTimeout, err = parseDuration("online.timeout", file.Online.Timeout, cfg.OnlineTimeout); err != nil {
			return err
		}
	}

	return nil
}

// parseDuration parses a positive duration, keeping fallback when raw is empty.
func parseDuration(field, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		invalid := zerr.With(zerr.Wrap(domain.ErrInvalidDuration, field), "value", raw)
		return 0, invalid
	}
	return d, nil
}

// resolveDir expands a leading ~ and anchors relative paths at the config directory.
func resolveDir(configDir, dir string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Clean(filepath.Join(configDir, dir))
}
