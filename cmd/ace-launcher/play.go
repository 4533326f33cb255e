package main

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play STREAM_ID",
		Short: "Open a stream in the configured player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				streamURL, err := a.playback.Play(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				cmd.Printf("playing %s\n", streamURL)
				return nil
			})
		},
	}
}
