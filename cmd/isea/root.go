package main

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/isea"
)

func newRootCmd() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "isea",
		Short: "Icosahedral Snyder Equal-Area projection",
		Long: `
isea maps geographic coordinates onto the twenty triangular faces of an
icosahedron circumscribed about the earth and back, preserving areas.
Coordinates are in degrees, face coordinates in kilometres from the center
of the face.`,
		SilenceUsage: true,
	}
	config.AddProjectionFlags(root.PersistentFlags())
	rootConf := viper.New()
	if err := rootConf.BindPFlags(root.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "binding root flags")
	}

	subcommands := []*config.SubCommand{
		newForwardCmd(), newInverseCmd(), newFaceCmd(), newBoundsCmd(),
		newBBoxCmd(), newFacesCmd(), newRenderCmd(), newCheckCmd(), newVersionCmd(),
	}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		if err := sc.Bind(root.PersistentFlags()); err != nil {
			return nil, err
		}
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := rootConf.GetString(config.KeyConfig)
		if path == "" {
			return nil
		}
		glog.V(1).Infof("Reading config %s", path)
		for _, sc := range subcommands {
			if err := sc.ReadConfigFile(path); err != nil {
				return err
			}
		}
		return nil
	}
	return root, nil
}

// projection builds the projection configured for sc.
func projection(sc *config.SubCommand) (*isea.Projection, error) {
	p, err := config.FromViper(sc.Conf).Projection()
	if err != nil {
		return nil, err
	}
	o := p.Orientation()
	glog.V(1).Infof("Projection radius %.6f km, orientation (%g, %g)", p.Radius(), o.Lat, o.Lon)
	return p, nil
}
