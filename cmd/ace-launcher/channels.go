package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alorle/ace-launcher/internal/channel"
)

func newChannelsCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Fetch the selected source and list its channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				catalog, err := a.catalog.Reload(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, ch := range channel.Filter(catalog.Channels, query) {
					fmt.Fprintf(w, "%s\t%s\t%s\n", ch.Name(), ch.StreamID(), ch.IconRef())
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only list channels whose name contains this text")

	return cmd
}
