package application

import (
	"strings"

	"github.com/alorle/ace-launcher/internal/m3u"
)

// CatalogReader exposes the current catalog.
type CatalogReader interface {
	Current() Catalog
}

// PlaylistService provides use cases for playlist export.
type PlaylistService struct {
	catalog  CatalogReader
	playback *PlaybackService
}

// NewPlaylistService creates a new PlaylistService. Stream URLs are formatted by
// playback so exported entries play through the same engine.
func NewPlaylistService(catalog CatalogReader, playback *PlaybackService) *PlaylistService {
	return &PlaylistService{
		catalog:  catalog,
		playback: playback,
	}
}

// GenerateM3U re-encodes the current catalog as an M3U playlist whose entries
// point at the engine. Returns the catalog error if the last build failed.
// Returns a playlist with only the #EXTM3U header if the catalog is empty.
func (p *PlaylistService) GenerateM3U() (string, error) {
	catalog := p.catalog.Current()
	if catalog.Err != nil {
		return "", catalog.Err
	}

	enc := m3u.NewEncoder(nil)
	for _, ch := range catalog.Channels {
		enc.AddEntry(&m3u.Entry{
			Title:    ch.Name(),
			URI:      p.playback.StreamURL(ch.StreamID()),
			Duration: -1,
			TVGTags: &m3u.TVGTags{
				Name: ch.Name(),
				Logo: ch.IconRef(),
			},
		})
	}

	var builder strings.Builder
	if err := enc.Encode(&builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
