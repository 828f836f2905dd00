// Package fetch implements the Fetcher port for downloading tool scripts over HTTP.
package fetch

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// httpClientTimeout caps a request when the caller's context has no deadline.
	httpClientTimeout = 30 * time.Second

	// maxToolSize bounds the size of a downloaded script.
	maxToolSize = 16 << 20
)

// Fetcher implements ports.Fetcher.
// A download whose content matches the file already on disk is not rewritten.
type Fetcher struct {
	httpClient *http.Client
	maxSize    int64
}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return newFetcherWithClient(&http.Client{
		Timeout: httpClientTimeout,
	})
}

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client, maxSize: maxToolSize}
}

// Fetch downloads url into dest and marks it executable.
// It reports whether dest was (re)written.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) (bool, error) {
	body, err := f.download(ctx, url)
	if err != nil {
		return false, err
	}

	if current, err := hashFile(dest); err == nil && current == xxhash.Sum64(body) {
		if err := os.Chmod(dest, domain.ExecPerm); err != nil {
			return false, zerr.With(zerr.Wrap(domain.ErrToolChmodFailed, err.Error()), "path", dest)
		}
		return false, nil
	}

	if err := atomicWriteFile(dest, body); err != nil {
		return false, err
	}
	return true, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := zerr.With(zerr.Wrap(domain.ErrDownloadStatus, "download winetricks"), "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", url)
	}
	if int64(len(body)) > f.maxSize {
		sizeErr := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "response exceeds size limit"), "limit", f.maxSize)
		return nil, zerr.With(sizeErr, "url", url)
	}
	return body, nil
}

// hashFile returns the xxhash64 digest of the file at path.
func hashFile(path string) (uint64, error) {
	//nolint:gosec // path is the configured tools location
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

// atomicWriteFile writes data to a temp file next to path, marks it executable
// and renames it into place, so a concurrent run never sees a partial script.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolsDirCreateFailed, err.Error()), "dir", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolWriteFailed, err.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); !errors.Is(statErr, fs.ErrNotExist) {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(domain.ErrToolWriteFailed, err.Error()), "path", path)
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolWriteFailed, err.Error()), "path", path)
	}

	if err := os.Chmod(tmpName, domain.ExecPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolChmodFailed, err.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolWriteFailed, err.Error()), "path", path)
	}
	return nil
}
