package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
)

func newBoundsCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "bounds [FACE]...",
		Short: "Print the center and extent of faces",
		Long: `Bounds prints the center, orientation and latitude/longitude extent
of the given faces, or of all faces. Values are in the frame of the
icosahedron; faces crossing the antimeridian have LONMIN > LONMAX.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			var faces []int
			if len(args) == 0 {
				for face := 0; face < p.NumberOfFaces(); face++ {
					faces = append(faces, face)
				}
			} else {
				recs, err := records(args, nil, 1)
				if err != nil {
					return err
				}
				for _, rec := range recs {
					face, err := faceIndex(rec[0])
					if err != nil {
						return err
					}
					faces = append(faces, face)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "FACE\tORIENT\tLAT\tLON\tLATMIN\tLATMAX\tLONMIN\tLONMAX\t")
			for _, face := range faces {
				center, err := p.Center(face)
				if err != nil {
					return err
				}
				b, err := p.FaceBounds(face)
				if err != nil {
					return err
				}
				orientation, err := p.FaceOrientation(face)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d\t%+d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t\n",
					face, orientation, center.Lat, center.Lon,
					b.LatMin, b.LatMax, b.LonMin, b.LonMax)
			}
			return w.Flush()
		},
	}
	return sc
}
