package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/alorle/ace-launcher/internal/channel"
	"github.com/alorle/ace-launcher/internal/metrics"
	"github.com/alorle/ace-launcher/internal/port/driven"
	"github.com/alorle/ace-launcher/internal/settings"
)

// PlaybackService launches the external player for a channel.
// Streams are played through the local AceStream engine, whose lifecycle is
// managed elsewhere.
type PlaybackService struct {
	store         driven.SettingsStore
	launcher      driven.PlayerLauncher
	engineBaseURL string
	logger        *slog.Logger
}

// NewPlaybackService creates a new PlaybackService. engineBaseURL points at the
// engine HTTP API, e.g. http://127.0.0.1:6878.
func NewPlaybackService(store driven.SettingsStore, launcher driven.PlayerLauncher, engineBaseURL string, logger *slog.Logger) *PlaybackService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaybackService{
		store:         store,
		launcher:      launcher,
		engineBaseURL: strings.TrimRight(engineBaseURL, "/"),
		logger:        logger,
	}
}

// StreamURL returns the engine URL that plays streamID.
func (s *PlaybackService) StreamURL(streamID string) string {
	params := url.Values{}
	params.Set("id", streamID)
	return fmt.Sprintf("%s/ace/getstream?%s", s.engineBaseURL, params.Encode())
}

// Play launches the configured player on the stream and returns the URL it was
// given. Stream ids that are not bare hex content ids are rejected with
// channel.ErrEmptyStreamID or channel.ErrInvalidStreamID. Returns ErrPlayerNotConfigured when no player path is set and an error
// wrapping ErrPlayerLaunchFailed when the process cannot be spawned.
func (s *PlaybackService) Play(ctx context.Context, streamID string) (string, error) {
	streamID = strings.TrimSpace(streamID)
	if err := channel.ValidateStreamID(streamID); err != nil {
		return "", err
	}

	playerPath, _, err := s.store.Get(ctx, settings.KeyPlayerPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", settings.KeyPlayerPath, err)
	}
	if strings.TrimSpace(playerPath) == "" {
		metrics.RecordPlayerLaunch("not_configured")
		return "", ErrPlayerNotConfigured
	}

	streamURL := s.StreamURL(streamID)
	if err := s.launcher.Launch(ctx, playerPath, streamURL); err != nil {
		metrics.RecordPlayerLaunch("failed")
		return "", fmt.Errorf("%w: %w", ErrPlayerLaunchFailed, err)
	}

	metrics.RecordPlayerLaunch("success")
	s.logger.Info("playback started", "stream_id", streamID, "url", streamURL)
	return streamURL, nil
}
