package driver

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Channels *ChannelHTTPHandler
	Sources  *SourceHTTPHandler
	Settings *SettingsHTTPHandler
	Play     *PlayHTTPHandler
	Playlist *PlaylistHTTPHandler
	Health   *HealthHTTPHandler
	Info     *InfoHTTPHandler
}

// NewRouter mounts the JSON API under /api/ and the playlist export and
// metrics at the root.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	apiMux := http.NewServeMux()
	apiMux.Handle("/channels", h.Channels)
	apiMux.Handle("/channels/", h.Channels)
	apiMux.Handle("/sources", h.Sources)
	apiMux.Handle("/settings", h.Settings)
	apiMux.Handle("/play", h.Play)
	apiMux.Handle("/health", h.Health)
	apiMux.Handle("/info", h.Info)

	rootMux := http.NewServeMux()
	rootMux.Handle("/api/", http.StripPrefix("/api", apiMux))
	rootMux.Handle("/playlist.m3u", h.Playlist)
	rootMux.Handle("/metrics", promhttp.Handler())

	return RequestLogger(logger, rootMux)
}
