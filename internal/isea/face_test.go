package isea

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/trig"
)

func TestFaceCache(t *testing.T) {
	p := MustNew()
	c := coord.GeoCoordinate{Lat: 40, Lon: 15}
	f := p.newFace(2, c)
	require.Zero(t, f.filled)

	z := f.Z()
	// z needs every term except the sine of the longitude difference.
	require.Equal(t, hasSinLat|hasCosLat|hasSinLat0|hasCosLat0|hasCosDLon|hasZ, f.filled)
	require.InDelta(t, coord.AngularDistance(c, coord.GeoCoordinate{Lat: p.c.e, Lon: 0}), z, 1e-9)

	// Cached values are returned as stored.
	f.z = -1
	require.Equal(t, -1.0, f.Z())

	require.InDelta(t, trig.Sin(15), f.SinDLon(), 1e-15)
	require.Equal(t, hasSinLat|hasCosLat|hasSinLat0|hasCosLat0|hasSinDLon|hasCosDLon|hasZ, f.filled)
}

func TestFaceZAtCenter(t *testing.T) {
	p := MustNew()
	for i := 0; i < NumberOfFaces; i++ {
		center, err := p.Center(i)
		require.NoError(t, err)
		f := p.newFace(i, center)
		require.InDelta(t, 0, f.Z(), 1e-5, "face %d", i)
	}
}
