package application

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/alorle/ace-launcher/internal/source"
)

// mockSettingsStore is an in-memory settings store. Function fields, when set,
// take precedence over the map.
type mockSettingsStore struct {
	mu       sync.Mutex
	values   map[string]string
	getFunc  func(ctx context.Context, key string) (string, bool, error)
	setFunc  func(ctx context.Context, key, value string) error
	pingFunc func(ctx context.Context) error
}

func newMockSettingsStore(values map[string]string) *mockSettingsStore {
	if values == nil {
		values = map[string]string{}
	}
	return &mockSettingsStore{values: values}
}

func (m *mockSettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockSettingsStore) Set(ctx context.Context, key, value string) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value)
	}
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

func (m *mockSettingsStore) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// mockSourceRepository is an in-memory source registry.
type mockSourceRepository struct {
	mu         sync.Mutex
	sources    []source.Source
	saveFunc   func(ctx context.Context, src source.Source) error
	deleteFunc func(ctx context.Context, location string) error
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
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, location)
	}
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

// mockCatalogRefresher counts reloads.
type mockCatalogRefresher struct {
	mu         sync.Mutex
	calls      int
	reloadFunc func(ctx context.Context) (Catalog, error)
}

func (m *mockCatalogRefresher) Reload(ctx context.Context) (Catalog, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.reloadFunc != nil {
		return m.reloadFunc(ctx)
	}
	return Catalog{}, nil
}

func (m *mockCatalogRefresher) reloads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCatalogReader struct {
	catalog Catalog
}

func (m *mockCatalogReader) Current() Catalog {
	return m.catalog
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustSource(name, location string, isFile bool) source.Source {
	src, err := source.NewSource(name, location, isFile)
	if err != nil {
		panic(err)
	}
	return src
}
