package driver

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/alorle/ace-launcher/internal/application"
	"github.com/alorle/ace-launcher/internal/icon"
	"github.com/alorle/ace-launcher/internal/source"
)

// mockSettingsStore is an in-memory settings store for testing.
type mockSettingsStore struct {
	mu       sync.Mutex
	values   map[string]string
	pingFunc func(ctx context.Context) error
}

func newMockSettingsStore(values map[string]string) *mockSettingsStore {
	if values == nil {
		values = map[string]string{}
	}
	return &mockSettingsStore{values: values}
}

func (m *mockSettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockSettingsStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mockSettingsStore) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// mockSourceRepository is an in-memory source registry for testing.
type mockSourceRepository struct {
	mu       sync.Mutex
	sources  []source.Source
	saveFunc func(ctx context.Context, src source.Source) error
}

func (m *mockSourceRepository) FindAll(ctx context.Context) ([]source.Source, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]source.Source, len(m.sources))
	copy(out, m.sources)
	return out, nil
}

func (m *mockSourceRepository) Save(ctx context.Context, src source.Source) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, src)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, src)
	return nil
}

func (m *mockSourceRepository) Delete(ctx context.Context, location string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = source.Without(m.sources, location)
	return nil
}

type mockContentFetcher struct {
	fetchFunc func(ctx context.Context, location string) (string, error)
}

func (m *mockContentFetcher) Fetch(ctx context.Context, location string) (string, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, location)
	}
	return "", nil
}

type mockPlayerLauncher struct {
	launchFunc func(ctx context.Context, playerPath, streamURL string) error
}

func (m *mockPlayerLauncher) Launch(ctx context.Context, playerPath, streamURL string) error {
	if m.launchFunc != nil {
		return m.launchFunc(ctx, playerPath, streamURL)
	}
	return nil
}

type mockAceStreamEngine struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockAceStreamEngine) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testApp wires real services over in-memory ports.
type testApp struct {
	store    *mockSettingsStore
	sources  *mockSourceRepository
	fetcher  *mockContentFetcher
	launcher *mockPlayerLauncher
	engine   *mockAceStreamEngine

	catalog  *application.CatalogService
	handlers Handlers
}

func newTestApp(store *mockSettingsStore, sources *mockSourceRepository, fetcher *mockContentFetcher) *testApp {
	logger := newTestLogger()
	app := &testApp{
		store:    store,
		sources:  sources,
		fetcher:  fetcher,
		launcher: &mockPlayerLauncher{},
		engine:   &mockAceStreamEngine{},
	}

	app.catalog = application.NewCatalogService(fetcher, icon.NewTable(nil), store, sources, logger)
	playback := application.NewPlaybackService(store, app.launcher, "http://127.0.0.1:6878", logger)

	app.handlers = Handlers{
		Channels: NewChannelHTTPHandler(app.catalog),
		Sources:  NewSourceHTTPHandler(application.NewSourceService(sources, store, app.catalog, logger)),
		Settings: NewSettingsHTTPHandler(application.NewSettingsService(store, sources, app.catalog, logger)),
		Play:     NewPlayHTTPHandler(playback, logger),
		Playlist: NewPlaylistHTTPHandler(application.NewPlaylistService(app.catalog, playback)),
		Health:   NewHealthHTTPHandler(application.NewHealthService(store, app.engine)),
		Info:     NewInfoHTTPHandler("http://127.0.0.1:6878"),
	}
	return app
}

func mustSource(name, location string) source.Source {
	src, err := source.NewSource(name, location, false)
	if err != nil {
		panic(err)
	}
	return src
}
