package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage playlist sources",
	}

	cmd.AddCommand(newSourcesListCmd(), newSourcesAddCmd(), newSourcesRemoveCmd())

	return cmd
}

func newSourcesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered sources; the selected one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				sources, err := a.sourceUC.List(cmd.Context())
				if err != nil {
					return err
				}
				current, err := a.settings.Get(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, src := range sources {
					mark := " "
					if src.Location() == current.SelectedSource() {
						mark = "*"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", mark, src.Name(), src.Location())
				}
				return w.Flush()
			})
		},
	}
}

func newSourcesAddCmd() *cobra.Command {
	var isFile bool

	cmd := &cobra.Command{
		Use:   "add NAME URL",
		Short: "Register a remote playlist URL, or a local file with --file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				src, err := a.sourceUC.Add(cmd.Context(), args[0], args[1], isFile)
				if err != nil {
					return err
				}
				cmd.Printf("added %s (%s)\n", src.Name(), src.Location())
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&isFile, "file", "f", false, "URL is a path to a local playlist file")

	return cmd
}

func newSourcesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove URL",
		Short: "Remove every source registered with URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if err := a.sourceUC.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				cmd.Printf("removed %s\n", args[0])
				return nil
			})
		},
	}
}
