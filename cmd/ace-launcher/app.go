package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.etcd.io/bbolt"

	"github.com/alorle/ace-launcher/internal/adapter/driven"
	"github.com/alorle/ace-launcher/internal/adapter/driver"
	"github.com/alorle/ace-launcher/internal/application"
	"github.com/alorle/ace-launcher/internal/config"
)

// app holds the wired adapters and services shared by all commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *bbolt.DB

	sources *driven.SourceJSONRepository

	catalog  *application.CatalogService
	settings *application.SettingsService
	sourceUC *application.SourceService
	playback *application.PlaybackService
	playlist *application.PlaylistService
	health   *application.HealthService
}

// newApp opens the data files named by cfg and builds the services.
// The icon table is read once here and shared by every catalog build.
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	icons := driven.LoadIconTable(afero.NewOsFs(), cfg.IconsPath(), logger)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath()), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := bbolt.Open(cfg.DBPath(), 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DBPath(), err)
	}

	store, err := driven.NewSettingsBoltDBStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create settings store: %w", err)
	}

	sources, err := driven.NewSourceJSONRepository(cfg.SourcesPath(), logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create source repository: %w", err)
	}

	fetcher := driven.NewContentFetcher(&http.Client{Timeout: cfg.Fetch.Timeout}, afero.NewOsFs(), logger)
	launcher := driven.NewPlayerExecLauncher(logger)
	engine := driven.NewAceStreamHTTPAdapter(cfg.Acestream.EngineURL, logger)

	catalog := application.NewCatalogService(fetcher, icons, store, sources, logger)
	playback := application.NewPlaybackService(store, launcher, cfg.Acestream.EngineURL, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		sources:  sources,
		catalog:  catalog,
		settings: application.NewSettingsService(store, sources, catalog, logger),
		sourceUC: application.NewSourceService(sources, store, catalog, logger),
		playback: playback,
		playlist: application.NewPlaylistService(catalog, playback),
		health:   application.NewHealthService(store, engine),
	}, nil
}

// handlers builds the HTTP handlers over the app services.
func (a *app) handlers() driver.Handlers {
	return driver.Handlers{
		Channels: driver.NewChannelHTTPHandler(a.catalog),
		Sources:  driver.NewSourceHTTPHandler(a.sourceUC),
		Settings: driver.NewSettingsHTTPHandler(a.settings),
		Play:     driver.NewPlayHTTPHandler(a.playback, a.logger),
		Playlist: driver.NewPlaylistHTTPHandler(a.playlist),
		Health:   driver.NewHealthHTTPHandler(a.health),
		Info:     driver.NewInfoHTTPHandler(a.cfg.Acestream.EngineURL),
	}
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}
}
