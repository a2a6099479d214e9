package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "folio",
		Short:        "folio - a small personal blog built with Go, Echo, and templ",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newPostsCmd(),
		newSeedCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the folio version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
			},
		},
	)
	return root
}
