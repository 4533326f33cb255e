package application

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alorle/ace-launcher/internal/channel"
	"github.com/alorle/ace-launcher/internal/m3u"
	"github.com/alorle/ace-launcher/internal/metrics"
	"github.com/alorle/ace-launcher/internal/playlist"
	"github.com/alorle/ace-launcher/internal/port/driven"
)

// Catalog is the result of the last catalog build for the selected source.
type Catalog struct {
	Location string
	Channels []channel.Channel
	BuiltAt  time.Time
	Err      error
}

// CatalogRefresher rebuilds the current catalog. Services that change the
// source list or the selection call it so the presentation layer sees fresh data.
type CatalogRefresher interface {
	Reload(ctx context.Context) (Catalog, error)
}

// CatalogService builds channel catalogs: it fetches the playlist of a source,
// parses it and resolves an icon for every channel.
type CatalogService struct {
	fetcher driven.ContentFetcher
	icons   m3u.IconResolver
	store   driven.SettingsStore
	sources driven.SourceRepository
	logger  *slog.Logger

	group singleflight.Group

	seq atomic.Uint64

	mu         sync.RWMutex
	current    Catalog
	currentSeq uint64
}

// NewCatalogService creates a new CatalogService.
// The icon resolver is loaded once at startup and shared read-only.
func NewCatalogService(
	fetcher driven.ContentFetcher,
	icons m3u.IconResolver,
	store driven.SettingsStore,
	sources driven.SourceRepository,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		fetcher: fetcher,
		icons:   icons,
		store:   store,
		sources: sources,
		logger:  logger,
		current: Catalog{Channels: []channel.Channel{}, Err: ErrNoSourceSelected},
	}
}

// Build fetches and parses the playlist at location.
// Returns ErrNoSourceSelected for an empty location and a *CatalogError of kind
// CatalogFetchFailed when the playlist cannot be retrieved. A playlist with no
// recognizable channels is a successful, empty build.
//
// Concurrent builds for the same location share one fetch. The shared fetch
// ignores cancellation of ctx, so one caller giving up neither fails the others
// nor replaces the current catalog with a cancellation error.
func (s *CatalogService) Build(ctx context.Context, location string) ([]channel.Channel, error) {
	if location == "" {
		metrics.RecordCatalogBuild("no_source")
		return nil, ErrNoSourceSelected
	}

	result, err, shared := s.group.Do(location, func() (interface{}, error) {
		return s.build(context.WithoutCancel(ctx), location)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logger.Debug("catalog build shared with concurrent caller", "location", location)
	}

	return slices.Clone(result.([]channel.Channel)), nil
}

func (s *CatalogService) build(ctx context.Context, location string) ([]channel.Channel, error) {
	start := time.Now()

	text, err := s.fetcher.Fetch(ctx, location)
	if err != nil {
		metrics.RecordCatalogBuild("fetch_failed")

		var fetchErr *playlist.FetchError
		if errors.As(err, &fetchErr) {
			metrics.RecordFetchError(string(fetchErr.Kind))
		} else {
			metrics.RecordFetchError("unknown")
		}

		s.logger.Error("catalog build failed", "location", location, "error", err)
		return nil, &CatalogError{Kind: CatalogFetchFailed, Message: err.Error(), Err: err}
	}

	channels := m3u.Decode(text, s.icons)

	metrics.RecordCatalogBuild("success")
	metrics.SetCatalogChannels(len(channels))
	s.logger.Info("catalog built",
		"location", location,
		"channels", len(channels),
		"duration", time.Since(start),
	)

	return channels, nil
}

// Reload builds the catalog for the selected source and makes it current.
// The catalog is stored even when the build fails, so readers see the error.
// When reloads overlap, the one started last wins regardless of finish order.
func (s *CatalogService) Reload(ctx context.Context) (Catalog, error) {
	seq := s.seq.Add(1)

	cfg, err := loadSettings(ctx, s.store, s.sources)
	if err != nil {
		return Catalog{}, err
	}

	location := cfg.SelectedSource()
	channels, buildErr := s.Build(ctx, location)
	if channels == nil {
		channels = []channel.Channel{}
	}

	catalog := Catalog{
		Location: location,
		Channels: channels,
		BuiltAt:  time.Now(),
		Err:      buildErr,
	}

	s.mu.Lock()
	if seq > s.currentSeq {
		s.current = catalog
		s.currentSeq = seq
	} else {
		s.logger.Debug("discarding superseded catalog", "location", location)
	}
	s.mu.Unlock()

	return catalog, buildErr
}

// Refresh reloads the catalog and logs failures. It suits callbacks that have
// nowhere to report an error, such as file watchers.
func (s *CatalogService) Refresh(ctx context.Context) {
	if _, err := s.Reload(ctx); err != nil {
		s.logger.Warn("catalog refresh failed", "error", err)
	}
}

// Current returns the last catalog made current by Reload.
func (s *CatalogService) Current() Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog := s.current
	catalog.Channels = slices.Clone(catalog.Channels)
	return catalog
}
