package driven

import "context"

// SettingsStore defines the interface for the key-value store holding user settings.
// This is a driven port that will be implemented by concrete adapters (e.g., BoltDB).
type SettingsStore interface {
	// Get returns the value stored under key and whether the key exists.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Ping checks if the store is accessible and operational.
	Ping(ctx context.Context) error
}
