package config

// Tricksfile represents the structure of the tricks.yaml configuration file.
// Durations are strings accepted by time.ParseDuration.
type Tricksfile struct {
	Version         string     `yaml:"version"`
	ToolsDir        string     `yaml:"toolsDir"`
	DownloadURL     string     `yaml:"downloadURL"`
	DownloadTimeout string     `yaml:"downloadTimeout"`
	FlushInterval   string     `yaml:"flushInterval"`
	BufferCapacity  *int       `yaml:"bufferCapacity"`
	Dependencies    []string   `yaml:"dependencies"`
	Language        string     `yaml:"language"`
	PTY             *bool      `yaml:"pty"`
	Online          *OnlineDTO `yaml:"online"`
}

// OnlineDTO configures the connectivity probe.
type OnlineDTO struct {
	Address string `yaml:"address"`
	Timeout string `yaml:"timeout"`
}
