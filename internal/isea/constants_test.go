package isea

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/trig"
)

func TestConstants(t *testing.T) {
	c := newConstants(coord.WGS84AuthalicRadius)

	require.InDelta(t, 10.812316963571707, c.f, 1e-12)
	require.InDelta(t, 37.37736814064969, c.vertexAngle, 1e-12)
	require.InDelta(t, 52.62263185935031, c.e, 1e-12)
	require.InDelta(t, 41.8103148957786, c.ef, 1e-12)
	require.InDelta(t, 0.9103832815095034, c.radiusRatio, 1e-12)
	require.InDelta(t, 5800.058423885172, c.rPrime, 1e-8)
	require.InDelta(t, 4430.850362377982, c.rTanVertex, 1e-8)
	require.InDelta(t, 3837.2289741868176, c.halfBase, 1e-8)
	require.Equal(t, maxNewtonIterations, c.maxIterations)

	// F can also be derived from the cartesian vertices: 90 + g - 2 atan(phi).
	require.InDelta(t, c.f, 90+c.vertexAngle-2*trig.Atan(goldenRatio), 1e-9)
}

func TestFaceCenters(t *testing.T) {
	c := newConstants(1)
	wantLons := [NumberOfFaces]float64{
		-144, -72, 0, 72, 144,
		-144, -72, 0, 72, 144,
		-108, -36, 36, 108, 180,
		-108, -36, 36, 108, 180,
	}
	require.Equal(t, wantLons, c.lons)
	for i := 0; i < 5; i++ {
		require.Equal(t, c.e, c.lats[i])
		require.Equal(t, c.f, c.lats[i+5])
		require.Equal(t, -c.f, c.lats[i+10])
		require.Equal(t, -c.e, c.lats[i+15])
	}
}

func TestNew(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	require.Equal(t, coord.WGS84AuthalicRadius, p.Radius())
	require.True(t, p.Orientation().IsZero())

	p, err = New(WithRadius(1), WithOrientation(10, 20))
	require.NoError(t, err)
	require.Equal(t, 1.0, p.Radius())
	require.Equal(t, Orientation{Lat: 10, Lon: 20}, p.Orientation())

	p, err = New(WithSymmetricEquator())
	require.NoError(t, err)
	require.InDelta(t, 31.717474411461005, p.OrientationLat(), 1e-12)
	require.Equal(t, -11.25, p.Orientation().Lon)

	for _, r := range []float64{0, -1} {
		_, err = New(WithRadius(r))
		require.Error(t, err)
		require.Equal(t, ErrInvalidRadius, errors.Cause(err))
	}
	require.Panics(t, func() { MustNew(WithRadius(0)) })
}

func TestPublishedConstants(t *testing.T) {
	p := MustNew()
	require.Equal(t, 20, p.NumberOfFaces())
	require.Equal(t, 17.27, p.MaximumAngularDistortion())
	require.Equal(t, 1.163, p.MaximumScaleVariation())
	require.Equal(t, 0.860, p.MinimumScaleVariation())
	require.InDelta(t, 7674.457948373635, p.LengthOfTriangleBase(), 1e-8)
}

func TestLengthOfTriangleBaseScalesWithRadius(t *testing.T) {
	unit := MustNew(WithRadius(1))
	earth := MustNew()
	require.InDelta(t, earth.LengthOfTriangleBase()/coord.WGS84AuthalicRadius, unit.LengthOfTriangleBase(), 1e-12)
}
