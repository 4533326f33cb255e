package main

import (
	"github.com/spf13/cobra"

	"github.com/alorle/ace-launcher/internal/adapter/driver"
	"github.com/alorle/ace-launcher/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and where to download VLC and AceStream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			cfg.Print(cmd.OutOrStdout())
			cmd.Printf("vlcDownloadUrl: %s\n", driver.PlayerDownloadURL)
			cmd.Printf("acestreamDownloadUrl: %s\n", driver.EngineDownloadURL)
			return nil
		},
	}
}
