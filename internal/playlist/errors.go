// Package playlist holds the error types shared by everything that retrieves
// raw playlist text.
package playlist

import "fmt"

// FetchKind classifies a failed playlist retrieval.
type FetchKind string

// Fetch failure kinds.
const (
	KindLocalReadFailed   FetchKind = "local_read_failed"
	KindRemoteFetchFailed FetchKind = "remote_fetch_failed"
)

// FetchError is returned when the playlist text for a location cannot be read.
type FetchError struct {
	Kind     FetchKind
	Location string
	Message  string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Location, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Location)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches another *FetchError of the same kind, so callers can test with
// errors.Is(err, &FetchError{Kind: KindRemoteFetchFailed}).
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
