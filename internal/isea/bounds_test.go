package isea

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFaceBoundsConsistency(t *testing.T) {
	p := MustNew()
	for face := 0; face < NumberOfFaces; face++ {
		lat, err := p.Lat(face)
		require.NoError(t, err)
		lon, err := p.Lon(face)
		require.NoError(t, err)
		b, err := p.FaceBounds(face)
		require.NoError(t, err)

		require.LessOrEqual(t, b.LatMin, lat, "face %d", face)
		require.LessOrEqual(t, lat, b.LatMax, "face %d", face)
		require.GreaterOrEqual(t, b.LatMin, -90.0)
		require.LessOrEqual(t, b.LatMax, 90.0)

		if b.LonMin <= b.LonMax {
			require.LessOrEqual(t, b.LonMin, lon, "face %d", face)
			require.LessOrEqual(t, lon, b.LonMax, "face %d", face)
		} else {
			// The face crosses the antimeridian.
			require.True(t, lon >= b.LonMin || lon <= b.LonMax, "face %d", face)
		}
	}
}

func TestFaceBounds_KnownValues(t *testing.T) {
	p := MustNew()
	vertexLat := p.c.vertexAngle - p.c.f
	tests := []struct {
		face                           int
		latMin, latMax, lonMin, lonMax float64
	}{
		// Upright polar face: apex at the pole, base at the vertex latitude.
		{2, vertexLat, 90, -36, 36},
		// Inverted belt face.
		{5, p.c.f - p.c.vertexAngle, 2*p.c.f + p.c.e - p.c.vertexAngle, -180, -108},
		{10, -p.c.f - (p.c.e + p.c.f - p.c.vertexAngle), p.c.vertexAngle - p.c.f, -144, -72},
		{14, -p.c.f - (p.c.e + p.c.f - p.c.vertexAngle), p.c.vertexAngle - p.c.f, 144, -144},
		{19, -90, -vertexLat, 144, -144},
	}
	for _, tt := range tests {
		latMin, err := p.LatMin(tt.face)
		require.NoError(t, err)
		latMax, err := p.LatMax(tt.face)
		require.NoError(t, err)
		lonMin, err := p.LonMin(tt.face)
		require.NoError(t, err)
		lonMax, err := p.LonMax(tt.face)
		require.NoError(t, err)
		require.InDelta(t, tt.latMin, latMin, 1e-9, "face %d", tt.face)
		require.InDelta(t, tt.latMax, latMax, 1e-9, "face %d", tt.face)
		require.InDelta(t, tt.lonMin, lonMin, 1e-9, "face %d", tt.face)
		require.InDelta(t, tt.lonMax, lonMax, 1e-9, "face %d", tt.face)
	}
}

func TestFaceAccessors_InvalidFace(t *testing.T) {
	p := MustNew()
	accessors := map[string]func(int) (float64, error){
		"Lat":    p.Lat,
		"Lon":    p.Lon,
		"LatMin": p.LatMin,
		"LatMax": p.LatMax,
		"LonMin": p.LonMin,
		"LonMax": p.LonMax,
	}
	for name, fn := range accessors {
		for _, face := range []int{-1, NumberOfFaces} {
			_, err := fn(face)
			require.Equal(t, ErrInvalidFace, errors.Cause(err), "%s(%d)", name, face)
		}
	}
	_, err := p.FaceBounds(-3)
	require.Equal(t, ErrInvalidFace, errors.Cause(err))
	_, err = p.Center(21)
	require.Equal(t, ErrInvalidFace, errors.Cause(err))
}
