package driven

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/alorle/ace-launcher/internal/port/driven"
)

// PlayerExecLauncher implements the PlayerLauncher port by spawning the player
// as a child process.
type PlayerExecLauncher struct {
	logger *slog.Logger
}

// NewPlayerExecLauncher creates a launcher that spawns processes with os/exec.
func NewPlayerExecLauncher(logger *slog.Logger) *PlayerExecLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerExecLauncher{logger: logger}
}

// Launch starts playerPath with streamURL and returns without waiting for the
// player to exit. The process outlives ctx; closing the player is up to the user.
func (l *PlayerExecLauncher) Launch(ctx context.Context, playerPath, streamURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.Command(playerPath, streamURL)
	if err := cmd.Start(); err != nil {
		l.logger.Error("failed to start player", "player", playerPath, "url", streamURL, "error", err)
		return fmt.Errorf("failed to start player %s: %w", playerPath, err)
	}

	pid := cmd.Process.Pid
	l.logger.Info("player started", "player", playerPath, "url", streamURL, "pid", pid)

	// Reap the child so it does not linger as a zombie
	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("player exited with error", "pid", pid, "error", err)
			return
		}
		l.logger.Debug("player exited", "pid", pid)
	}()

	return nil
}

// Ensure PlayerExecLauncher implements the driven.PlayerLauncher interface
var _ driven.PlayerLauncher = (*PlayerExecLauncher)(nil)
