// Package isea implements the Icosahedral Snyder Equal-Area projection, which
// maps the sphere onto the twenty faces of a circumscribed icosahedron while
// preserving areas.
//
// The projection is described in John P. Snyder, "An equal-area map
// projection for polyhedral globes", Cartographica 29(1), 10-21, 1992.
// The inverse follows the Newton-Raphson formulation of Harrison,
// Mahdavi-Amiri and Samavati, "Optimization of inverse Snyder polyhedral
// projection", International Conference on Cyberworlds, 2011.
//
// Angles are in degrees. Planar face coordinates are in the length unit of
// the sphere radius, kilometres by default.
package isea

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pspoerri/isea/internal/coord"
)

// Orientation is the rotation of the icosahedron relative to the sphere. The
// zero value places icosahedron vertices at the geographic poles.
//
// A point is first shifted by Lon in the direction of positive longitude and
// then by Lat in the direction of positive latitude.
type Orientation struct {
	Lat float64
	Lon float64
}

// IsZero reports whether o is the default orientation.
func (o Orientation) IsZero() bool {
	return o.Lat == 0 && o.Lon == 0
}

// Projection is an ISEA projection for one sphere radius and orientation.
//
// All projection methods are safe for concurrent use. SetOrientation and
// SetOrientationSymmetricEquator are configuration: they must not be called
// concurrently with anything else on the same Projection.
type Projection struct {
	c      constants
	orient Orientation
}

// Option configures a Projection created by New.
type Option func(*options)

type options struct {
	radius           float64
	orientation      Orientation
	symmetricEquator bool
}

// WithRadius sets the sphere radius. It defaults to the WGS84 authalic radius
// in kilometres.
func WithRadius(radius float64) Option {
	return func(o *options) { o.radius = radius }
}

// WithOrientation sets the initial orientation of the icosahedron.
func WithOrientation(lat, lon float64) Option {
	return func(o *options) {
		o.orientation = Orientation{Lat: lat, Lon: lon}
		o.symmetricEquator = false
	}
}

// WithSymmetricEquator orients the icosahedron as SetOrientationSymmetricEquator does.
func WithSymmetricEquator() Option {
	return func(o *options) { o.symmetricEquator = true }
}

// New computes the projection constants for the configured radius.
func New(opts ...Option) (*Projection, error) {
	o := options{radius: coord.WGS84AuthalicRadius}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.radius > 0) {
		return nil, errors.Wrapf(ErrInvalidRadius, "radius %v", o.radius)
	}
	p := &Projection{c: newConstants(o.radius)}
	if o.symmetricEquator {
		p.SetOrientationSymmetricEquator()
	} else {
		p.SetOrientation(o.orientation.Lat, o.orientation.Lon)
	}
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Projection {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NumberOfFaces returns the number of faces of the icosahedron.
func (p *Projection) NumberOfFaces() int { return NumberOfFaces }

// Radius returns the radius of the projected sphere.
func (p *Projection) Radius() float64 { return p.c.radius }

// SetOrientation sets the orientation of the icosahedron relative to the
// default orientation.
func (p *Projection) SetOrientation(lat, lon float64) {
	p.orient = Orientation{Lat: lat, Lon: lon}
	glog.V(1).Infof("isea: orientation set to lat=%v lon=%v", lat, lon)
}

// SetOrientationSymmetricEquator orients the icosahedron so that the poles
// fall on edge midpoints, which maps the equator symmetrically.
func (p *Projection) SetOrientationSymmetricEquator() {
	p.SetOrientation((p.c.e+p.c.f)/2, -11.25)
}

// Orientation returns the current orientation.
func (p *Projection) Orientation() Orientation { return p.orient }

// OrientationLat returns the latitude component of the orientation.
func (p *Projection) OrientationLat() float64 { return p.orient.Lat }

// MaximumAngularDistortion returns the maximum angular distortion in degrees.
func (p *Projection) MaximumAngularDistortion() float64 { return maxAngularDistortion }

// MaximumScaleVariation returns the maximum scale factor.
func (p *Projection) MaximumScaleVariation() float64 { return maxScaleVariation }

// MinimumScaleVariation returns the minimum scale factor.
func (p *Projection) MinimumScaleVariation() float64 { return minScaleVariation }

// LengthOfTriangleBase returns the side length of a face in the plane.
func (p *Projection) LengthOfTriangleBase() float64 { return 2 * p.c.halfBase }

// SphereToIcosahedron projects a geographic coordinate onto the face it
// belongs to.
func (p *Projection) SphereToIcosahedron(c coord.GeoCoordinate) coord.FaceCoordinate {
	c = p.ToCanonical(c)
	f := p.selectFace(c)
	return p.project(&f)
}

// SphereToFace returns the face a geographic coordinate belongs to.
func (p *Projection) SphereToFace(c coord.GeoCoordinate) int {
	return p.FaceOf(p.ToCanonical(c))
}

// FaceOf returns the face of a coordinate that is already in the canonical
// frame of the icosahedron.
func (p *Projection) FaceOf(c coord.GeoCoordinate) int {
	return p.selectFace(c).index
}

// SphereToPlaneOfFace projects c onto the plane of the given face, even if c
// belongs to another face. The result lies on the face only if c belongs to
// it. This is meant for overlap tests of areas and faces.
func (p *Projection) SphereToPlaneOfFace(face int, c coord.GeoCoordinate) (coord.FaceCoordinate, error) {
	return p.SphereToPlaneOfFaceCanonical(face, p.ToCanonical(c))
}

// SphereToPlaneOfFaceCanonical is SphereToPlaneOfFace for a coordinate that
// is already in the canonical frame.
func (p *Projection) SphereToPlaneOfFaceCanonical(face int, c coord.GeoCoordinate) (coord.FaceCoordinate, error) {
	if err := checkFace(face); err != nil {
		return coord.FaceCoordinate{}, err
	}
	f := p.newFace(face, c)
	return p.project(&f), nil
}

// IcosahedronToSphere converts a face coordinate back to a geographic coordinate.
func (p *Projection) IcosahedronToSphere(c coord.FaceCoordinate) (coord.GeoCoordinate, error) {
	g, _, err := p.IcosahedronToSphereIterations(c)
	return g, err
}

// IcosahedronToSphereIterations is IcosahedronToSphere that also reports
// how many Newton-Raphson iterations the inverse took.
func (p *Projection) IcosahedronToSphereIterations(c coord.FaceCoordinate) (coord.GeoCoordinate, int, error) {
	if err := checkFace(c.Face); err != nil {
		return coord.GeoCoordinate{}, 0, err
	}
	g, n, err := p.unproject(c)
	if err != nil {
		return coord.GeoCoordinate{}, n, err
	}
	return p.FromCanonical(g), n, nil
}

// FaceOrientation returns 1 for faces drawn as upright triangles and -1 for
// upside-down ones.
func (p *Projection) FaceOrientation(face int) (int, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	return faceOrientation(face), nil
}

// FaceOrientationOf returns the orientation of the face c lies on.
func (p *Projection) FaceOrientationOf(c coord.FaceCoordinate) (int, error) {
	return p.FaceOrientation(c.Face)
}

// faceOrientation is FaceOrientation for a face known to be valid.
func faceOrientation(face int) int {
	if face <= 4 || (10 <= face && face <= 14) {
		return 1
	}
	return -1
}
