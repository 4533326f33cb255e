package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alorle/ace-launcher/internal/port/driven"
	"github.com/alorle/ace-launcher/internal/settings"
	"github.com/alorle/ace-launcher/internal/source"
)

// SourceService provides use cases for managing playlist sources.
// It keeps the selected source consistent with the registry.
type SourceService struct {
	sources driven.SourceRepository
	store   driven.SettingsStore
	catalog CatalogRefresher
	logger  *slog.Logger
}

// NewSourceService creates a new SourceService.
func NewSourceService(sources driven.SourceRepository, store driven.SettingsStore, catalog CatalogRefresher, logger *slog.Logger) *SourceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceService{
		sources: sources,
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// List returns all registered sources.
func (s *SourceService) List(ctx context.Context) ([]source.Source, error) {
	return s.sources.FindAll(ctx)
}

// Add registers a new source and refreshes the catalog; the selection is kept.
// Local sources are stored with the file:// prefix.
// Returns source.ErrEmptyName or source.ErrEmptyLocation for invalid input.
// Adding a location that is already registered is not rejected.
func (s *SourceService) Add(ctx context.Context, name, location string, isFile bool) (source.Source, error) {
	var (
		src source.Source
		err error
	)
	if isFile {
		src, err = source.NewLocalSource(name, location)
	} else {
		src, err = source.NewSource(name, location, false)
	}
	if err != nil {
		return source.Source{}, err
	}

	if err := s.sources.Save(ctx, src); err != nil {
		return source.Source{}, err
	}

	s.refresh(ctx)
	return src, nil
}

// Remove deletes every source with location. If it was the selected source,
// the selection moves to the first remaining source, or is cleared when none
// remain. The catalog is then rebuilt.
func (s *SourceService) Remove(ctx context.Context, location string) error {
	current, err := loadSettings(ctx, s.store, s.sources)
	if err != nil {
		return err
	}

	if err := s.sources.Delete(ctx, location); err != nil {
		return err
	}

	if current.SelectedSource() == location {
		remaining, err := s.sources.FindAll(ctx)
		if err != nil {
			return err
		}

		next := source.FirstLocation(remaining)
		if err := s.store.Set(ctx, settings.KeySelectedSource, next); err != nil {
			return fmt.Errorf("failed to reassign %s: %w", settings.KeySelectedSource, err)
		}
		s.logger.Info("selected source reassigned", "removed", location, "selected_source", next)
	}

	s.refresh(ctx)
	return nil
}

func (s *SourceService) refresh(ctx context.Context) {
	if _, err := s.catalog.Reload(ctx); err != nil {
		s.logger.Warn("catalog reload after source change failed", "error", err)
	}
}
