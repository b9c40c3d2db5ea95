package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/facegeo"
)

func newFacesCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "faces",
		Short: "Export the outlines of all faces as GeoJSON",
		Long: `Faces writes a GeoJSON FeatureCollection with the outline of every face
on the sphere. Each edge is split into --densify segments before it is
projected, so outlines follow the curved face boundaries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			densify := sc.Conf.GetInt("densify")
			if densify < 1 {
				return errors.Errorf("densify must be positive, got %d", densify)
			}
			fc, err := facegeo.FaceCollection(p, densify)
			if err != nil {
				return err
			}
			data, err := fc.MarshalJSON()
			if err != nil {
				return errors.Wrap(err, "encoding GeoJSON")
			}
			return writeOutput(cmd.OutOrStdout(), sc.Conf.GetString("output"), append(data, '\n'))
		},
	}
	flags := sc.Cmd.Flags()
	flags.Int("densify", 32, "Number of segments per face edge.")
	flags.StringP("output", "o", "", "Output file; standard output if empty.")
	return sc
}
