package driven

import "context"

// PlayerLauncher defines the interface for starting the external media player.
type PlayerLauncher interface {
	// Launch starts the player at playerPath with streamURL as its argument.
	// It returns once the process has been spawned and does not wait for it to exit.
	Launch(ctx context.Context, playerPath, streamURL string) error
}
