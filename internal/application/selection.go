package application

import (
	"context"
	"fmt"

	"github.com/alorle/ace-launcher/internal/port/driven"
	"github.com/alorle/ace-launcher/internal/settings"
	"github.com/alorle/ace-launcher/internal/source"
)

// loadSettings reads the settings from store.
// A selection that was never stored defaults to the first registered source.
func loadSettings(ctx context.Context, store driven.SettingsStore, sources driven.SourceRepository) (settings.Settings, error) {
	playerPath, _, err := store.Get(ctx, settings.KeyPlayerPath)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to read %s: %w", settings.KeyPlayerPath, err)
	}

	selected, found, err := store.Get(ctx, settings.KeySelectedSource)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to read %s: %w", settings.KeySelectedSource, err)
	}

	if !found {
		all, err := sources.FindAll(ctx)
		if err != nil {
			return settings.Settings{}, err
		}
		selected = source.FirstLocation(all)
	}

	return settings.NewSettings(playerPath, selected), nil
}
