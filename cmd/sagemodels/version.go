package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set via ldflags at release time.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// No config or logger needed.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sagemodels %s (built with %s)\n", version, runtime.Version())
		},
	}
}
