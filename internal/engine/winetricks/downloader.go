// Package winetricks keeps the local copy of the Winetricks script current.
package winetricks

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"time"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result describes what a download attempt did.
type Result string

const (
	// ResultDownloaded means the script was written.
	ResultDownloaded Result = "downloaded"
	// ResultUpToDate means the local script already matched the remote one.
	ResultUpToDate Result = "up_to_date"
	// ResultOffline means the network was unreachable and nothing was fetched.
	ResultOffline Result = "offline"
	// ResultUnsupported means the platform cannot run Winetricks.
	ResultUnsupported Result = "unsupported"
	// ResultFailed means the download failed. The failure was logged.
	ResultFailed Result = "failed"
)

// Request describes one download.
type Request struct {
	URL      string
	ToolsDir string
	Timeout  time.Duration

	// Connectivity decides whether the download is attempted. Nil assumes online.
	Connectivity ports.Connectivity
	// Translator localizes log messages. Nil keeps the built-in English text.
	Translator ports.Translator
}

// Downloader fetches the Winetricks script into the tools directory.
type Downloader struct {
	fetcher  ports.Fetcher
	tracer   ports.Tracer
	logger   ports.Logger
	platform string
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithPlatform overrides the operating system the downloader believes it runs on.
func WithPlatform(goos string) Option {
	return func(d *Downloader) {
		d.platform = goos
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(fetcher ports.Fetcher, tracer ports.Tracer, logger ports.Logger, opts ...Option) *Downloader {
	d := &Downloader{
		fetcher:  fetcher,
		tracer:   tracer,
		logger:   logger,
		platform: runtime.GOOS,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download refreshes the script. Failures are logged as warnings and never returned.
func (d *Downloader) Download(ctx context.Context, req Request) Result {
	t := ports.TranslatorOrDefault(req.Translator)
	dest := domain.WinetricksPath(req.ToolsDir)

	if d.platform != "linux" {
		d.logger.Warn(warning(zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, "download winetricks"), "platform", d.platform)))
		return ResultUnsupported
	}

	if req.Connectivity != nil && !req.Connectivity.IsOnline(ctx) {
		d.logger.Warn(t.T("winetricks.downloadSkippedOffline", "Skipping Winetricks download, no network connectivity", nil))
		return ResultOffline
	}

	url := req.URL
	if url == "" {
		url = domain.WinetricksURL
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultDownloadTimeout
	}

	ctx, span := d.tracer.Start(ctx, "winetricks.download", ports.WithAttributes(map[string]string{
		"url":  url,
		"dest": dest,
	}))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	written, err := d.fetcher.Fetch(ctx, url, dest)
	if err != nil {
		span.RecordError(err)
		d.logger.Warn(warning(err))
		return ResultFailed
	}

	span.SetAttribute("written", written)
	if !written {
		d.logger.Info(t.T("winetricks.upToDate", "Winetricks is up to date", nil))
		return ResultUpToDate
	}

	d.logger.Info(t.T("winetricks.downloaded", "Downloaded Winetricks to {{path}}", map[string]string{"path": dest}))
	return ResultDownloaded
}

// warning renders err with its metadata on one line.
func warning(err error) string {
	msg := err.Error()
	if m, ok := err.(interface{ Metadata() map[string]any }); ok {
		meta := m.Metadata()
		for _, k := range slices.Sorted(maps.Keys(meta)) {
			msg += fmt.Sprintf(" %s=%v", k, meta[k])
		}
	}
	return msg
}
