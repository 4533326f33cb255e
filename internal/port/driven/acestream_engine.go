package driven

import "context"

// AceStreamEngine defines the interface for the locally running AceStream Engine.
// The engine lifecycle is not managed here; it is only probed for health.
type AceStreamEngine interface {
	// Ping checks if the engine HTTP API is reachable.
	// Returns nil if healthy, otherwise returns an error describing the issue.
	Ping(ctx context.Context) error
}
