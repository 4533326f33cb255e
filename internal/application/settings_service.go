package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alorle/ace-launcher/internal/port/driven"
	"github.com/alorle/ace-launcher/internal/settings"
)

// SettingsService provides use cases for reading and saving user settings.
type SettingsService struct {
	store   driven.SettingsStore
	sources driven.SourceRepository
	catalog CatalogRefresher
	logger  *slog.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store driven.SettingsStore, sources driven.SourceRepository, catalog CatalogRefresher, logger *slog.Logger) *SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsService{
		store:   store,
		sources: sources,
		catalog: catalog,
		logger:  logger,
	}
}

// Get returns the current settings. A selection that was never saved defaults
// to the first registered source.
func (s *SettingsService) Get(ctx context.Context) (settings.Settings, error) {
	return loadSettings(ctx, s.store, s.sources)
}

// Save stores the player path and selected source, then reloads the catalog.
// A failed reload is logged; the saved settings are still returned.
func (s *SettingsService) Save(ctx context.Context, playerPath, selectedSource string) (settings.Settings, error) {
	cfg := settings.NewSettings(playerPath, selectedSource)

	if err := s.store.Set(ctx, settings.KeyPlayerPath, cfg.PlayerPath()); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save %s: %w", settings.KeyPlayerPath, err)
	}
	if err := s.store.Set(ctx, settings.KeySelectedSource, cfg.SelectedSource()); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save %s: %w", settings.KeySelectedSource, err)
	}

	s.logger.Info("settings saved", "player", cfg.PlayerPath(), "selected_source", cfg.SelectedSource())

	if _, err := s.catalog.Reload(ctx); err != nil {
		s.logger.Warn("catalog reload after settings save failed", "error", err)
	}

	return cfg, nil
}
