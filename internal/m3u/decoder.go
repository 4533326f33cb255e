package m3u

import (
	"strings"

	"github.com/alorle/ace-launcher/internal/channel"
)

const (
	extinfTag       = "#EXTINF"
	aceStreamScheme = "acestream://"
	idParam         = "id="
	httpPrefix      = "http"
)

// IconResolver maps a channel name to an icon reference.
type IconResolver interface {
	Resolve(name string) string
}

// pending accumulates the name and stream id of the channel being read.
// It emits a channel as soon as both are known and starts over.
type pending struct {
	name     string
	streamID string
}

func (p *pending) complete() bool {
	return p.name != "" && p.streamID != ""
}

func (p *pending) reset() {
	p.name = ""
	p.streamID = ""
}

// Decode parses AceStream-style M3U text into channels, in the order their
// name/id pairs complete. It never fails: lines that are not understood are
// skipped, and a name or id that never finds its pair is dropped.
func Decode(text string, icons IconResolver) []channel.Channel {
	channels := []channel.Channel{}

	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\r' || r == '\n'
	})

	var acc pending
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, extinfTag):
			acc.name = extinfName(line)
		case strings.HasPrefix(line, aceStreamScheme):
			acc.streamID = strings.TrimSpace(strings.TrimPrefix(line, aceStreamScheme))
		case strings.HasPrefix(line, httpPrefix):
			if id, ok := embeddedStreamID(line); ok {
				acc.streamID = id
			}
		}

		if !acc.complete() {
			continue
		}

		iconRef := resolveIcon(icons, acc.name)
		if ch, err := channel.NewChannel(acc.name, acc.streamID, iconRef); err == nil {
			channels = append(channels, ch)
		}
		acc.reset()
	}

	return channels
}

// extinfName returns the display name of an #EXTINF line: the text after its
// last comma, trimmed. Lines without a comma have no name.
func extinfName(line string) string {
	idx := strings.LastIndex(line, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}

// embeddedStreamID finds a content id inside an HTTP locator, either after an
// embedded acestream:// scheme or in an id= query parameter. The marker that
// appears first in the line wins.
func embeddedStreamID(line string) (string, bool) {
	bestPos := -1
	best := ""

	for _, marker := range []string{aceStreamScheme, idParam} {
		pos, token := hexAfter(line, marker)
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos {
			bestPos = pos
			best = token
		}
	}

	return best, bestPos >= 0
}

// hexAfter returns the position of the first occurrence of marker that is
// immediately followed by a hex token, along with that token.
func hexAfter(line, marker string) (int, string) {
	offset := 0
	for {
		idx := strings.Index(line[offset:], marker)
		if idx < 0 {
			return -1, ""
		}

		pos := offset + idx
		start := pos + len(marker)
		end := start
		for end < len(line) && isHex(line[end]) {
			end++
		}
		if end > start {
			return pos, line[start:end]
		}

		offset = start
	}
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func resolveIcon(icons IconResolver, name string) string {
	if icons == nil {
		return ""
	}
	return icons.Resolve(name)
}
