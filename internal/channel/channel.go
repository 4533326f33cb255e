package channel

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("channel name cannot be empty")
	ErrEmptyStreamID   = errors.New("channel stream id cannot be empty")
	ErrInvalidStreamID = errors.New("channel stream id must be a hex content id")
)

// Channel is a single entry of a parsed catalog: a display name, the bare
// AceStream content id it plays and the icon shown next to it.
// Channels are produced on every catalog build and never persisted.
type Channel struct {
	name     string
	streamID string
	iconRef  string
}

// NewChannel creates a new Channel.
// Name and stream id are trimmed and must not be empty. The icon reference is
// kept as given; an empty icon is allowed and left to the presentation layer.
func NewChannel(name, streamID, iconRef string) (Channel, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return Channel{}, ErrEmptyName
	}

	trimmedID := strings.TrimSpace(streamID)
	if trimmedID == "" {
		return Channel{}, ErrEmptyStreamID
	}

	return Channel{
		name:     trimmedName,
		streamID: trimmedID,
		iconRef:  iconRef,
	}, nil
}

// ValidateStreamID checks that id is a bare AceStream content id: a non-empty
// run of hex digits with no scheme prefix.
func ValidateStreamID(id string) error {
	if id == "" {
		return ErrEmptyStreamID
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return ErrInvalidStreamID
		}
	}
	return nil
}

// Name returns the channel's display name.
func (c Channel) Name() string {
	return c.name
}

// StreamID returns the AceStream content id, without any scheme prefix.
func (c Channel) StreamID() string {
	return c.streamID
}

// IconRef returns the icon reference resolved for the channel name.
func (c Channel) IconRef() string {
	return c.iconRef
}

// Filter returns the channels whose name contains query, ignoring case.
// An empty query returns the input unchanged.
func Filter(channels []Channel, query string) []Channel {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return channels
	}

	filtered := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if strings.Contains(strings.ToLower(ch.name), q) {
			filtered = append(filtered, ch)
		}
	}
	return filtered
}
