package driven

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/alorle/ace-launcher/internal/metrics"
	"github.com/alorle/ace-launcher/internal/playlist"
	"github.com/alorle/ace-launcher/internal/port/driven"
	"github.com/alorle/ace-launcher/internal/source"
)

// ContentFetcher implements the ContentFetcher port for remote URLs and local files.
// Remote playlists are fetched with a single GET and no retry; nothing is cached.
type ContentFetcher struct {
	httpClient *http.Client
	fs         afero.Fs
	logger     *slog.Logger
}

// NewContentFetcher creates a fetcher. A nil client uses a client with the
// transport defaults, and a nil filesystem uses the OS filesystem.
func NewContentFetcher(httpClient *http.Client, fsys afero.Fs, logger *slog.Logger) *ContentFetcher {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentFetcher{
		httpClient: httpClient,
		fs:         fsys,
		logger:     logger,
	}
}

// Fetch returns the playlist text at location.
func (f *ContentFetcher) Fetch(ctx context.Context, location string) (string, error) {
	if source.IsLocal(location) {
		return f.readLocal(location)
	}
	return f.fetchRemote(ctx, location)
}

func (f *ContentFetcher) readLocal(location string) (string, error) {
	start := time.Now()
	path := source.LocalPath(location)

	data, err := afero.ReadFile(f.fs, path)
	metrics.ObserveFetch("local", time.Since(start).Seconds())
	if err != nil {
		f.logger.Error("failed to read local playlist", "path", path, "error", err)
		return "", &playlist.FetchError{
			Kind:     playlist.KindLocalReadFailed,
			Location: location,
			Message:  err.Error(),
			Err:      err,
		}
	}

	f.logger.Debug("read local playlist", "path", path, "bytes", len(data))
	return string(data), nil
}

func (f *ContentFetcher) fetchRemote(ctx context.Context, location string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveFetch("remote", time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", remoteError(location, fmt.Sprintf("invalid request: %v", err), err)
	}

	f.logger.Debug("fetching remote playlist", "url", location)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error("failed to fetch remote playlist", "url", location, "error", err)
		return "", remoteError(location, err.Error(), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warn("failed to close response body", "url", location, "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("remote playlist returned error status", "url", location, "status", resp.StatusCode)
		return "", remoteError(location, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", remoteError(location, fmt.Sprintf("failed to read response body: %v", err), err)
	}

	f.logger.Debug("fetched remote playlist", "url", location, "bytes", len(body))
	return string(body), nil
}

func remoteError(location, message string, err error) *playlist.FetchError {
	return &playlist.FetchError{
		Kind:     playlist.KindRemoteFetchFailed,
		Location: location,
		Message:  message,
		Err:      err,
	}
}

// Ensure ContentFetcher implements the driven.ContentFetcher interface
var _ driven.ContentFetcher = (*ContentFetcher)(nil)
