package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/coord"
)

func newInverseCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "inverse [FACE X Y]...",
		Short: "Convert face coordinates back to geographic coordinates",
		Long: `Inverse converts each FACE X Y triple and prints LAT LON. Without
arguments, triples are read from standard input, one per line. Put --
before arguments starting with a minus sign.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			recs, err := records(args, cmd.InOrStdin(), 3)
			if err != nil {
				return err
			}
			iterations := sc.Conf.GetBool("iterations")
			out := cmd.OutOrStdout()
			for _, rec := range recs {
				face, err := faceIndex(rec[0])
				if err != nil {
					return err
				}
				g, n, err := p.IcosahedronToSphereIterations(coord.FaceCoordinate{Face: face, X: rec[1], Y: rec[2]})
				if err != nil {
					return err
				}
				g = g.NormalizeLon()
				if iterations {
					fmt.Fprintf(out, "%.9f %.9f %d\n", g.Lat, g.Lon, n)
				} else {
					fmt.Fprintf(out, "%.9f %.9f\n", g.Lat, g.Lon)
				}
			}
			return nil
		},
	}
	sc.Cmd.Flags().Bool("iterations", false,
		"Also print the number of Newton-Raphson iterations of each inverse.")
	return sc
}
