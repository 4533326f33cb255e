package m3u

import (
	"fmt"
	"io"
)

// Entry is a single playlist item written by the encoder.
type Entry struct {
	Title    string
	URI      string
	Duration float64
	TVGTags  *TVGTags
}

func (e *Entry) encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#EXTINF:%0.0f", e.Duration); err != nil {
		return err
	}

	if e.TVGTags != nil && !e.TVGTags.empty() {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}

		if err := e.TVGTags.encode(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, ",%s\n%s\n", e.Title, e.URI); err != nil {
		return err
	}

	return nil
}
