package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/coord"
)

func newFaceCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "face [LAT LON]...",
		Short: "Print the face containing geographic coordinates",
		Long: `Face prints the face containing each LAT LON pair. Without arguments,
pairs are read from standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			recs, err := records(args, cmd.InOrStdin(), 2)
			if err != nil {
				return err
			}
			for _, rec := range recs {
				c, err := coord.NewGeoCoordinate(rec[0], rec[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.SphereToFace(c))
			}
			return nil
		},
	}
	return sc
}
