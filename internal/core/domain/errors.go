package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when Winetricks is requested on a platform other than Linux.
	ErrUnsupportedPlatform = zerr.New("winetricks is only supported on linux")

	// ErrInvalidInstallation is returned when a Wine/Proton installation fails validation.
	ErrInvalidInstallation = zerr.New("invalid wine installation")

	// ErrUnknownWineType is returned when an installation declares an unrecognized type.
	ErrUnknownWineType = zerr.New("unknown wine type, expected 'wine', 'proton' or 'crossover'")

	// ErrMissingWineBin is returned when no wine binary is given for a run.
	ErrMissingWineBin = zerr.New("missing wine binary")

	// ErrMissingPrefix is returned when no prefix is given for a run.
	ErrMissingPrefix = zerr.New("missing wine prefix")

	// ErrOffline is returned when a download is attempted without network connectivity.
	ErrOffline = zerr.New("no network connectivity")

	// ErrDownloadFailed is returned when fetching the tool binary fails.
	ErrDownloadFailed = zerr.New("failed to download winetricks")

	// ErrDownloadStatus is returned when the download server answers with a non-2xx status.
	ErrDownloadStatus = zerr.New("unexpected download status")

	// ErrToolWriteFailed is returned when the downloaded tool cannot be written to disk.
	ErrToolWriteFailed = zerr.New("failed to write winetricks")

	// ErrToolChmodFailed is returned when the downloaded tool cannot be marked executable.
	ErrToolChmodFailed = zerr.New("failed to mark winetricks executable")

	// ErrToolsDirCreateFailed is returned when the tools directory cannot be created.
	ErrToolsDirCreateFailed = zerr.New("failed to create tools directory")

	// ErrProcessStartFailed is returned when the tool process cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrProcessFailed is returned when the tool process fails while running.
	ErrProcessFailed = zerr.New("process failed")

	// ErrRunCancelled is returned when the session is closed while the tool is still running.
	ErrRunCancelled = zerr.New("winetricks run cancelled")

	// ErrDependencyMissing is returned when a required host command is not on PATH.
	ErrDependencyMissing = zerr.New("dependency not installed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDuration is returned when a duration field in the config is malformed.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrInvalidCapacity is returned when the progress buffer capacity is not positive.
	ErrInvalidCapacity = zerr.New("buffer capacity must be positive")

	// ErrCatalogParseFailed is returned when a translation catalog cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse translation catalog")

	// ErrUnknownOutputMode is returned when an unsupported output mode is requested.
	ErrUnknownOutputMode = zerr.New("unknown output mode, expected 'auto', 'tui', 'linear' or 'json'")

	// ErrSessionClosed is returned when a session can no longer accept events.
	ErrSessionClosed = zerr.New("session closed")
)
