package domain

import (
	"slices"
	"time"
)

const (
	// DefaultDownloadTimeout bounds the Winetricks download request.
	DefaultDownloadTimeout = 1000 * time.Millisecond
	// DefaultFlushInterval is the cadence of progress emissions.
	DefaultFlushInterval = 1000 * time.Millisecond
	// DefaultOnlineAddress is dialled to decide whether the network is reachable.
	DefaultOnlineAddress = "1.1.1.1:443"
	// DefaultOnlineTimeout bounds the connectivity probe.
	DefaultOnlineTimeout = 2 * time.Second
	// DefaultLanguage is used when neither the config nor LANG select one.
	DefaultLanguage = "en"
	// AutoLanguage selects the language from the LANG environment variable.
	AutoLanguage = ""
)

// Config holds the resolved application settings.
type Config struct {
	ToolsDir        string
	DownloadURL     string
	DownloadTimeout time.Duration
	FlushInterval   time.Duration
	BufferCapacity  int
	Dependencies    []string
	Language        string
	PTY             bool
	OnlineAddress   string
	OnlineTimeout   time.Duration
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ToolsDir:        DefaultToolsPath(),
		DownloadURL:     WinetricksURL,
		DownloadTimeout: DefaultDownloadTimeout,
		FlushInterval:   DefaultFlushInterval,
		BufferCapacity:  DefaultProgressCapacity,
		Dependencies:    slices.Clone(RequiredDependencies),
		Language:        AutoLanguage,
		OnlineAddress:   DefaultOnlineAddress,
		OnlineTimeout:   DefaultOnlineTimeout,
	}
}

// WinetricksPath returns the location of the Winetricks script for this config.
func (c Config) WinetricksPath() string {
	return WinetricksPath(c.ToolsDir)
}
