package driven

import (
	"context"

	"github.com/alorle/ace-launcher/internal/source"
)

// SourceRepository defines the interface for the durable list of playlist sources.
// This is a driven port that will be implemented by concrete adapters (e.g., a JSON file).
type SourceRepository interface {
	// FindAll returns every registered source in insertion order.
	// A missing or unreadable store yields an empty list, not an error.
	FindAll(ctx context.Context) ([]source.Source, error)

	// Save appends a source. Duplicate locations are not rejected.
	// Returns an error wrapping source.ErrPersistenceFailed if the store cannot be written.
	Save(ctx context.Context, src source.Source) error

	// Delete removes every source with the given location and persists the rest.
	// Returns an error wrapping source.ErrPersistenceFailed if the store cannot be written.
	Delete(ctx context.Context, location string) error
}
