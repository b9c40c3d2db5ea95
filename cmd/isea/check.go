package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/check"
	"github.com/pspoerri/isea/internal/config"
)

func newCheckCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "check",
		Short: "Measure the round-trip accuracy of the projection",
		Long: `Check projects random points of the sphere onto the icosahedron and back
and reports the distribution of the round-trip error and of the number of
Newton-Raphson iterations. It fails when an error exceeds --tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			conf := sc.Conf
			cfg := check.Config{
				Samples:     conf.GetInt("samples"),
				Concurrency: conf.GetInt("concurrency"),
				Seed:        conf.GetUint64("seed"),
				Tolerance:   conf.GetFloat64("tolerance"),
			}
			if conf.GetBool("progress") {
				cfg.Progress = os.Stderr
			}
			report, err := check.Run(cmd.Context(), p, cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return report.Err()
		},
	}
	flags := sc.Cmd.Flags()
	flags.Int("samples", 1000000, "Number of random points.")
	flags.Uint64("seed", 1, "Seed of the random points.")
	flags.Float64("tolerance", check.DefaultTolerance, "Accepted round-trip error in degrees.")
	flags.Int("concurrency", 0, "Number of parallel workers (default: number of CPUs).")
	flags.Bool("progress", false, "Show a progress bar on standard error.")
	return sc
}
