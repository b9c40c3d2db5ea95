package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/facegeo"
)

func newBBoxCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "bbox LAT0 LAT1 LON0 LON1",
		Short: "Rotate a bounding box into the frame of the icosahedron",
		Long: `BBox prints the boxes in the frame of the icosahedron that cover the
geographic box LAT0..LAT1 x LON0..LON1. A box with LON0 > LON1 crosses the
antimeridian and is split in two. Put -- before the arguments when one
starts with a minus sign.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			recs, err := records(args, nil, 4)
			if err != nil {
				return err
			}
			lat0, lat1, lon0, lon1 := recs[0][0], recs[0][1], recs[0][2], recs[0][3]
			if lat0 > lat1 || lat0 < -90 || lat1 > 90 {
				return errors.Errorf("invalid latitude range [%v, %v]", lat0, lat1)
			}
			boxes := p.RotateBoundingBox(lat0, lat1, lon0, lon1)

			out := cmd.OutOrStdout()
			if sc.Conf.GetBool("geojson") {
				data, err := facegeo.BoxCollection(boxes).MarshalJSON()
				if err != nil {
					return errors.Wrap(err, "encoding GeoJSON")
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			for _, b := range boxes {
				fmt.Fprintf(out, "%.9f %.9f %.9f %.9f\n", b.LatMin, b.LatMax, b.LonMin, b.LonMax)
			}
			return nil
		},
	}
	sc.Cmd.Flags().Bool("geojson", false, "Print the boxes as a GeoJSON FeatureCollection.")
	return sc
}
