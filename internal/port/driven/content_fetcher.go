package driven

import "context"

// ContentFetcher defines the interface for retrieving raw playlist text.
// Implementations return a *playlist.FetchError when the location cannot be read.
type ContentFetcher interface {
	// Fetch returns the full playlist text found at location, which is either
	// an HTTP(S) URL or a file:// path.
	Fetch(ctx context.Context, location string) (string, error)
}
