package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the application directory under the user config directory.
	AppDirName = "tricks"

	// ToolsDirName is the name of the directory holding downloaded tools.
	ToolsDirName = "tools"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tricks.yaml"

	// WinetricksBinName is the file name of the downloaded Winetricks script.
	WinetricksBinName = "winetricks"

	// WinetricksURL is the upstream location of the Winetricks script.
	WinetricksURL = "https://raw.githubusercontent.com/Winetricks/winetricks/master/src/winetricks"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission applied to downloaded tools (rwxr-xr-x).
	ExecPerm = 0o755
)

// DefaultConfigDir returns the application config directory.
// It honours XDG_CONFIG_HOME and falls back to ~/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// DefaultToolsPath returns the default directory for downloaded tools.
func DefaultToolsPath() string {
	return filepath.Join(DefaultConfigDir(), ToolsDirName)
}

// DefaultConfigPath returns the default location of the configuration file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFileName)
}

// WinetricksPath returns the path of the Winetricks script inside toolsDir.
func WinetricksPath(toolsDir string) string {
	return filepath.Join(toolsDir, WinetricksBinName)
}
