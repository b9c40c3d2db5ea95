package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/coord"
)

func newForwardCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "forward [LAT LON]...",
		Short: "Project geographic coordinates onto the icosahedron",
		Long: `Forward projects each LAT LON pair and prints FACE X Y. Without
arguments, pairs are read from standard input, one per line. Put --
before arguments starting with a minus sign.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			recs, err := records(args, cmd.InOrStdin(), 2)
			if err != nil {
				return err
			}
			face := sc.Conf.GetInt("face")
			out := cmd.OutOrStdout()
			for _, rec := range recs {
				c, err := coord.NewGeoCoordinate(rec[0], rec[1])
				if err != nil {
					return err
				}
				var fc coord.FaceCoordinate
				if face >= 0 {
					if fc, err = p.SphereToPlaneOfFace(face, c); err != nil {
						return err
					}
				} else {
					fc = p.SphereToIcosahedron(c)
				}
				fmt.Fprintf(out, "%d %.9f %.9f\n", fc.Face, fc.X, fc.Y)
			}
			return nil
		},
	}
	sc.Cmd.Flags().Int("face", -1,
		"Project onto the plane of this face instead of the face containing the point.")
	return sc
}
