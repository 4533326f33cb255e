package m3u

import (
	"fmt"
	"io"
	"strings"
)

// Encoder writes an extended M3U playlist.
type Encoder struct {
	epgURLs []string
	items   []*Entry
}

// NewEncoder creates an Encoder. guideURLs, when present, are written to the
// header as tvg-url.
func NewEncoder(guideURLs []string) *Encoder {
	return &Encoder{epgURLs: guideURLs, items: []*Entry{}}
}

// AddEntry appends an item to the playlist.
func (p *Encoder) AddEntry(item *Entry) {
	p.items = append(p.items, item)
}

// Encode writes the header followed by every entry in insertion order.
func (p *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U"); err != nil {
		return err
	}

	if len(p.epgURLs) > 0 {
		if _, err := fmt.Fprintf(w, " tvg-url=\"%s\"", strings.Join(p.epgURLs, ",")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	for _, item := range p.items {
		if err := item.encode(w); err != nil {
			return err
		}
	}

	return nil
}
