package config

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/isea"
)

// Keys of the projection options, shared by flags, environment and files.
const (
	KeyConfig           = "config"
	KeyOrientationLat   = "orientation-lat"
	KeyOrientationLon   = "orientation-lon"
	KeySymmetricEquator = "symmetric-equator"
	KeyRadius           = "radius"
)

// ErrInvalidOptions is returned for inconsistent projection options.
var ErrInvalidOptions = errors.New("invalid projection options")

// Options configures the projection used by a command.
type Options struct {
	Radius           float64 // kilometres
	OrientationLat   float64
	OrientationLon   float64
	SymmetricEquator bool
}

// DefaultOptions is the unrotated projection on the WGS84 authalic sphere.
var DefaultOptions = Options{Radius: coord.WGS84AuthalicRadius}

// AddProjectionFlags registers the projection options on fs.
func AddProjectionFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	fs.Float64(KeyOrientationLat, DefaultOptions.OrientationLat,
		"Rotation of the icosahedron towards positive latitude, in degrees.")
	fs.Float64(KeyOrientationLon, DefaultOptions.OrientationLon,
		"Rotation of the icosahedron towards positive longitude, in degrees.")
	fs.Bool(KeySymmetricEquator, DefaultOptions.SymmetricEquator,
		"Orient the icosahedron symmetrically about the equator. "+
			"Cannot be combined with --orientation-lat or --orientation-lon.")
	fs.Float64(KeyRadius, DefaultOptions.Radius,
		"Radius of the sphere in kilometres.")
}

// FromViper reads the projection options from conf.
func FromViper(conf *viper.Viper) Options {
	return Options{
		Radius:           conf.GetFloat64(KeyRadius),
		OrientationLat:   conf.GetFloat64(KeyOrientationLat),
		OrientationLon:   conf.GetFloat64(KeyOrientationLon),
		SymmetricEquator: conf.GetBool(KeySymmetricEquator),
	}
}

// Validate checks that o describes a projection.
func (o Options) Validate() error {
	if !(o.Radius > 0) || math.IsInf(o.Radius, 1) {
		return errors.Wrapf(ErrInvalidOptions, "radius must be positive, got %v", o.Radius)
	}
	for _, v := range []float64{o.OrientationLat, o.OrientationLon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidOptions, "orientation must be finite, got %v", v)
		}
	}
	if o.SymmetricEquator && (o.OrientationLat != 0 || o.OrientationLon != 0) {
		return errors.Wrap(ErrInvalidOptions, "symmetric equator overrides the orientation")
	}
	return nil
}

// Projection builds the projection described by o.
func (o Options) Projection() (*isea.Projection, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	opts := []isea.Option{isea.WithRadius(o.Radius)}
	if o.SymmetricEquator {
		opts = append(opts, isea.WithSymmetricEquator())
	} else {
		opts = append(opts, isea.WithOrientation(o.OrientationLat, o.OrientationLon))
	}
	return isea.New(opts...)
}
