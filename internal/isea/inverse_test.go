package isea

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/isea/internal/coord"
)

// lonDelta returns the difference of two longitudes across the antimeridian.
func lonDelta(a, b float64) float64 {
	return math.Abs(coord.NormalizeLon(a - b))
}

func requireSamePoint(t *testing.T, want, got coord.GeoCoordinate, tol float64) {
	t.Helper()
	require.InDelta(t, want.Lat, got.Lat, tol, "lat of %v, got %v", want, got)
	if math.Abs(want.Lat) < 90-1e-6 {
		require.LessOrEqual(t, lonDelta(want.Lon, got.Lon)*math.Cos(want.Lat*math.Pi/180), tol,
			"lon of %v, got %v", want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	orientations := []struct {
		name string
		opts []Option
	}{
		{"default", nil},
		{"symmetric equator", []Option{WithSymmetricEquator()}},
		{"arbitrary", []Option{WithOrientation(12, -40)}},
		{"unit sphere", []Option{WithRadius(1), WithOrientation(-33, 101)}},
	}
	for _, o := range orientations {
		t.Run(o.name, func(t *testing.T) {
			p := MustNew(o.opts...)
			r := newRand()
			for i := 0; i < 5000; i++ {
				c := randomPoint(r)
				fc := p.SphereToIcosahedron(c)
				got, n, err := p.IcosahedronToSphereIterations(fc)
				require.NoError(t, err, "%v -> %v", c, fc)
				require.LessOrEqual(t, n, 10)
				requireSamePoint(t, c, got, 1e-6)
			}
		})
	}
}

func TestRoundTrip_Grid(t *testing.T) {
	p := MustNew()
	for lat := -89.0; lat <= 89; lat += 7 {
		for lon := -179.0; lon <= 179; lon += 11 {
			c := coord.GeoCoordinate{Lat: lat, Lon: lon}
			got, err := p.IcosahedronToSphere(p.SphereToIcosahedron(c))
			require.NoError(t, err)
			requireSamePoint(t, c, got, 1e-6)
		}
	}
}

func TestIcosahedronToSphere_Poles(t *testing.T) {
	p := MustNew(WithSymmetricEquator())
	for _, lat := range []float64{90, -90} {
		got, err := p.IcosahedronToSphere(p.SphereToIcosahedron(coord.GeoCoordinate{Lat: lat}))
		require.NoError(t, err)
		require.InDelta(t, lat, got.Lat, 1e-6)
	}
}

func TestIcosahedronToSphere_FaceCenter(t *testing.T) {
	p := MustNew()
	for i := 0; i < NumberOfFaces; i++ {
		got, n, err := p.IcosahedronToSphereIterations(coord.FaceCoordinate{Face: i})
		require.NoError(t, err)
		require.Zero(t, n)
		center, _ := p.Center(i)
		require.Equal(t, center, got)
	}
}

// The vertices lie on the azimuths where sin Az' is zero. The inverse must
// still recover them.
func TestIcosahedronToSphere_Vertices(t *testing.T) {
	p := MustNew()
	r := p.c.rTanVertex
	vertexLat := p.c.vertexAngle - p.c.f

	apex, err := p.IcosahedronToSphere(coord.FaceCoordinate{Face: 2, X: 0, Y: r})
	require.NoError(t, err)
	require.InDelta(t, 90, apex.Lat, 1e-9)

	right, err := p.IcosahedronToSphere(coord.FaceCoordinate{Face: 2, X: r * math.Sqrt(3) / 2, Y: -r / 2})
	require.NoError(t, err)
	requireSamePoint(t, coord.GeoCoordinate{Lat: vertexLat, Lon: 36}, right, 1e-9)

	bottom, err := p.IcosahedronToSphere(coord.FaceCoordinate{Face: 7, X: 0, Y: -r})
	require.NoError(t, err)
	requireSamePoint(t, coord.GeoCoordinate{Lat: -vertexLat, Lon: 0}, bottom, 1e-9)
}

func TestIcosahedronToSphere_InvalidFace(t *testing.T) {
	p := MustNew()
	for _, face := range []int{-1, 20, 100} {
		_, err := p.IcosahedronToSphere(coord.FaceCoordinate{Face: face, X: 1, Y: 1})
		require.Error(t, err)
		require.Equal(t, ErrInvalidFace, errors.Cause(err))
	}
}

func TestIcosahedronToSphere_OutsideDomain(t *testing.T) {
	p := MustNew()
	for _, fc := range []coord.FaceCoordinate{
		{Face: 2, X: 1e5, Y: 1e5},
		{Face: 7, X: 0, Y: -1e6},
		{Face: 15, X: -3e4, Y: 0},
	} {
		_, err := p.IcosahedronToSphere(fc)
		require.Equal(t, ErrOutsideDomain, errors.Cause(err), "%v", fc)
	}

	// Beyond the triangle but within the domain the inverse still holds.
	c := coord.GeoCoordinate{Lat: -10, Lon: 5}
	fc, err := p.SphereToPlaneOfFace(2, c)
	require.NoError(t, err)
	back, err := p.IcosahedronToSphere(fc)
	require.NoError(t, err)
	requireSamePoint(t, c, back, 1e-8)
}

func TestSolveAzimuth_DegenerateDerivative(t *testing.T) {
	c := newConstants(1)
	// With these terms H(Az) = |Az|, so sin H vanishes at the initial guess.
	c.sinSphericalCosVertex = 0
	c.cosSpherical = -1
	_, n, err := c.solveAzimuth(1, 0)
	require.Error(t, err)
	require.Equal(t, ErrDegenerateDerivative, errors.Cause(err))
	require.Equal(t, 1, n)
}

func TestSolveAzimuth_NoConvergence(t *testing.T) {
	p := MustNew()
	p.c.maxIterations = 1
	fc := p.SphereToIcosahedron(coord.GeoCoordinate{Lat: 45, Lon: 10})
	_, err := p.IcosahedronToSphere(fc)
	require.Error(t, err)
	require.Equal(t, ErrNoConvergence, errors.Cause(err))
}
