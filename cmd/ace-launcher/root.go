package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alorle/ace-launcher/internal/config"
)

// newRootCmd builds the command tree. Every subcommand loads the configuration
// from CONFIG_FILE and the environment before it runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ace-launcher",
		Short:         "Browse AceStream channel lists and play them in VLC",
		SilenceUsage: true,
	}
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(
		newServeCmd(),
		newChannelsCmd(),
		newSourcesCmd(),
		newSettingsCmd(),
		newPlayCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// newLogger creates the structured logger used by every command.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// withApp loads the configuration, wires the application and runs fn.
// Logs go to stderr so command output stays machine readable.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := newApp(cfg, newLogger(cmd.ErrOrStderr(), cfg))
	if err != nil {
		return err
	}
	defer a.close()

	return fn(a)
}
