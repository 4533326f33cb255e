package application

import (
	"errors"
	"fmt"
)

// CatalogErrorKind classifies a failed catalog build.
type CatalogErrorKind string

// Catalog failure kinds.
const (
	CatalogNoSourceSelected CatalogErrorKind = "no_source_selected"
	CatalogFetchFailed      CatalogErrorKind = "fetch_failed"
)

// CatalogError is returned by catalog builds. For CatalogFetchFailed it wraps
// the *playlist.FetchError reported by the fetcher.
type CatalogError struct {
	Kind    CatalogErrorKind
	Message string
	Err     error
}

func (e *CatalogError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("catalog %s", e.Kind)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Is matches another *CatalogError of the same kind.
func (e *CatalogError) Is(target error) bool {
	t, ok := target.(*CatalogError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Application errors.
var (
	ErrNoSourceSelected    error = &CatalogError{Kind: CatalogNoSourceSelected, Message: "no source selected"}
	ErrPlayerNotConfigured       = errors.New("player path is not configured")
	ErrPlayerLaunchFailed        = errors.New("player launch failed")
)
