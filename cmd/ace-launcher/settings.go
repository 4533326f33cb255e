package main

import (
	"github.com/spf13/cobra"

	"github.com/alorle/ace-launcher/internal/settings"
)

func newSettingsCmd() *cobra.Command {
	var (
		playerPath string
		selected   string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show settings, or change them with --player and --source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				current, err := a.settings.Get(cmd.Context())
				if err != nil {
					return err
				}

				playerChanged := cmd.Flags().Changed("player")
				sourceChanged := cmd.Flags().Changed("source")
				if playerChanged || sourceChanged {
					if !playerChanged {
						playerPath = current.PlayerPath()
					}
					if !sourceChanged {
						selected = current.SelectedSource()
					}
					current, err = a.settings.Save(cmd.Context(), playerPath, selected)
					if err != nil {
						return err
					}
				}

				cmd.Printf("%s: %s\n", settings.KeyPlayerPath, current.PlayerPath())
				cmd.Printf("%s: %s\n", settings.KeySelectedSource, current.SelectedSource())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&playerPath, "player", "", "Path to the VLC executable")
	cmd.Flags().StringVar(&selected, "source", "", "Location of the source to select")

	return cmd
}
