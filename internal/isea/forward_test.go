package isea

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/isea/internal/coord"
)

// Regression values for the WGS84 authalic sphere, in kilometres.
func TestSphereToIcosahedron_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     coord.FaceCoordinate
	}{
		{"origin", 0, 0, coord.FaceCoordinate{Face: 7, X: 0, Y: -1302.8097242352055}},
		{"europe", 45, 10, coord.FaceCoordinate{Face: 2, X: 831.4992379371118, Y: -795.5380130780891}},
		{"south america", -30, -100, coord.FaceCoordinate{Face: 10, X: 816.0729271049498, Y: -2062.4763656015757}},
		{"near south pole", -89, 170, coord.FaceCoordinate{Face: 19, X: -18.728117842306375, Y: -4312.948001328394}},
		{"antimeridian", 10, 179.5, coord.FaceCoordinate{Face: 14, X: -51.30023923336467, Y: 2483.992113812586}},
		// The north pole is the apex of face 2.
		{"north pole", 90, 0, coord.FaceCoordinate{Face: 2, X: 0, Y: 4430.850362377982}},
	}
	p := MustNew()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SphereToIcosahedron(coord.GeoCoordinate{Lat: tt.lat, Lon: tt.lon})
			require.Equal(t, tt.want.Face, got.Face)
			require.InDelta(t, tt.want.X, got.X, 1e-6)
			require.InDelta(t, tt.want.Y, got.Y, 1e-6)
		})
	}
}

// With the symmetric orientation the equator runs along face edges: the
// origin lands on the upper edge of the inverted face 7, at y = R' tan g / 2.
func TestSphereToIcosahedron_SymmetricEquator(t *testing.T) {
	p := MustNew(WithSymmetricEquator())
	got := p.SphereToIcosahedron(coord.GeoCoordinate{Lat: 0, Lon: 0})
	require.Equal(t, 7, got.Face)
	require.InDelta(t, -1331.4540746209352, got.X, 1e-6)
	require.InDelta(t, 2215.425181188989, got.Y, 1e-6)
	require.InDelta(t, p.c.rTanVertex/2, got.Y, 1e-6)

	// The poles sit on edge midpoints, half the circumradius from the center.
	north := p.SphereToIcosahedron(coord.GeoCoordinate{Lat: 90, Lon: 0})
	require.Equal(t, 0, north.Face)
	require.InDelta(t, p.c.rTanVertex/2, math.Hypot(north.X, north.Y), 1e-6)
	south := p.SphereToIcosahedron(coord.GeoCoordinate{Lat: -90, Lon: 0})
	require.Equal(t, 16, south.Face)
	require.InDelta(t, p.c.rTanVertex/2, math.Hypot(south.X, south.Y), 1e-6)
}

func TestSphereToIcosahedron_FaceCenter(t *testing.T) {
	p := MustNew()
	for i := 0; i < NumberOfFaces; i++ {
		center, _ := p.Center(i)
		got := p.SphereToIcosahedron(center)
		require.Equal(t, i, got.Face)
		require.False(t, math.IsNaN(got.X) || math.IsNaN(got.Y), "face %d", i)
		require.InDelta(t, 0, got.X, 1e-3, "face %d", i)
		require.InDelta(t, 0, got.Y, 1e-3, "face %d", i)
	}
}

// Projected points stay inside their face triangle.
func TestSphereToIcosahedron_InsideTriangle(t *testing.T) {
	p := MustNew()
	r := newRand()
	const eps = 1e-6
	circumradius := p.c.rTanVertex
	for i := 0; i < 5000; i++ {
		fc := p.SphereToIcosahedron(randomPoint(r))
		y := fc.Y * float64(faceOrientation(fc.Face))
		// Upright triangle: base at y = -r/2, sides through the apex (0, r).
		require.GreaterOrEqual(t, y, -circumradius/2-eps, "%v", fc)
		require.LessOrEqual(t, math.Abs(fc.X)*math.Sqrt(3)+y, circumradius+eps, "%v", fc)
	}
}

func TestSphereToPlaneOfFace(t *testing.T) {
	p := MustNew(WithOrientation(12, -40))
	c := coord.GeoCoordinate{Lat: 33, Lon: 20}

	own := p.SphereToIcosahedron(c)
	onPlane, err := p.SphereToPlaneOfFace(own.Face, c)
	require.NoError(t, err)
	require.Equal(t, own, onPlane)

	canonical, err := p.SphereToPlaneOfFaceCanonical(own.Face, p.ToCanonical(c))
	require.NoError(t, err)
	require.Equal(t, own, canonical)

	other := (own.Face + 1) % NumberOfFaces
	fc, err := p.SphereToPlaneOfFace(other, c)
	require.NoError(t, err)
	require.Equal(t, other, fc.Face)

	_, err = p.SphereToPlaneOfFace(20, c)
	require.Equal(t, ErrInvalidFace, errors.Cause(err))
	_, err = p.SphereToPlaneOfFaceCanonical(-1, c)
	require.Equal(t, ErrInvalidFace, errors.Cause(err))
}

func TestNormalizeAzimuth(t *testing.T) {
	p := MustNew()
	tests := []struct {
		face    int
		az      float64
		wantAz  float64
		wantAdj float64
	}{
		{2, 0, 0, 0},
		{2, 100, 100, 0},
		{2, 130, 10, -120},
		{2, -10, 110, 120},
		{2, -179, 61, 240},
		{7, 0, 60, 60},
		{7, -60, 120, 180},
		{7, 180, 120, -60},
	}
	for _, tt := range tests {
		az, adj := p.normalizeAzimuth(tt.face, tt.az)
		require.InDelta(t, tt.wantAz, az, 1e-12, "face %d az %v", tt.face, tt.az)
		require.InDelta(t, tt.wantAdj, adj, 1e-12, "face %d az %v", tt.face, tt.az)
		require.GreaterOrEqual(t, az, 0.0)
		require.LessOrEqual(t, az, float64(azMax))
	}
}
