package main

import "github.com/spf13/cobra"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "poasta",
		Short:         "partial-order alignment of sequences to a graph",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(alignCmd())
	cmd.AddCommand(exportCmd())
	return cmd
}
