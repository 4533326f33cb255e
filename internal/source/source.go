package source

import (
	"strings"
)

// FileScheme prefixes the location of sources that point at a local file.
const FileScheme = "file://"

// Source is a named playlist origin the user can select among.
// The location is either an HTTP(S) URL or a local path encoded with FileScheme
// and identifies the source within the registry.
type Source struct {
	name     string
	location string
	isFile   bool
}

// NewSource creates a new Source.
// Returns ErrEmptyName or ErrEmptyLocation when the trimmed value is empty.
func NewSource(name, location string, isFile bool) (Source, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return Source{}, ErrEmptyName
	}

	trimmedLocation := strings.TrimSpace(location)
	if trimmedLocation == "" {
		return Source{}, ErrEmptyLocation
	}

	return Source{
		name:     trimmedName,
		location: trimmedLocation,
		isFile:   isFile,
	}, nil
}

// NewLocalSource creates a Source for a playlist on the local filesystem.
// The path is stored with the FileScheme prefix unless it already carries it.
func NewLocalSource(name, path string) (Source, error) {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return Source{}, ErrEmptyLocation
	}
	if !IsLocal(trimmedPath) {
		trimmedPath = FileScheme + trimmedPath
	}
	return NewSource(name, trimmedPath, true)
}

// Name returns the display name of the source.
func (s Source) Name() string {
	return s.name
}

// Location returns the URL or file:// location of the source.
func (s Source) Location() string {
	return s.location
}

// IsFile reports whether the source was registered as a local file.
func (s Source) IsFile() bool {
	return s.isFile
}

// IsLocal reports whether location denotes a local file.
func IsLocal(location string) bool {
	return strings.HasPrefix(location, FileScheme)
}

// LocalPath strips the FileScheme prefix from a local location.
func LocalPath(location string) string {
	return strings.TrimPrefix(location, FileScheme)
}

// Without returns the sources whose location differs from location.
// The input slice is left untouched.
func Without(sources []Source, location string) []Source {
	remaining := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.location != location {
			remaining = append(remaining, s)
		}
	}
	return remaining
}

// FirstLocation returns the location of the first source, or "" when empty.
func FirstLocation(sources []Source) string {
	if len(sources) == 0 {
		return ""
	}
	return sources[0].location
}
