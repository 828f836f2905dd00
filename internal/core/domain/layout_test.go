package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/tricks/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultConfigDir",
			got:      domain.DefaultConfigDir(),
			expected: filepath.Join("/xdg", "tricks"),
		},
		{
			name:     "DefaultToolsPath",
			got:      domain.DefaultToolsPath(),
			expected: filepath.Join("/xdg", "tricks", "tools"),
		},
		{
			name:     "DefaultConfigPath",
			got:      domain.DefaultConfigPath(),
			expected: filepath.Join("/xdg", "tricks", "tricks.yaml"),
		},
		{
			name:     "WinetricksPath",
			got:      domain.WinetricksPath("/opt/tools"),
			expected: filepath.Join("/opt/tools", "winetricks"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestDefaultConfigDir_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/gamer")

	if got, want := domain.DefaultConfigDir(), filepath.Join("/home/gamer", ".config", "tricks"); got != want {
		t.Errorf("DefaultConfigDir() = %v, want %v", got, want)
	}
}
