package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func newVersionCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version of isea",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "isea %s (commit %s, built %s, %s)\n",
				version, commit, buildDate, runtime.Version())
		},
	}
	return sc
}
