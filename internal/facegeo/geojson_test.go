package facegeo

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/isea"
)

func TestFaceCollection(t *testing.T) {
	p := isea.MustNew()
	fc, err := FaceCollection(p, 4)
	require.NoError(t, err)
	require.Len(t, fc.Features, isea.NumberOfFaces)

	for face, f := range fc.Features {
		require.True(t, f.Geometry.IsPolygon())
		require.Len(t, f.Geometry.Polygon, 1)
		require.Len(t, f.BoundingBox, 4)

		id, err := f.PropertyInt("face")
		require.NoError(t, err)
		require.Equal(t, face, id)
		orientation, err := f.PropertyInt("orientation")
		require.NoError(t, err)
		wantOrientation, err := p.FaceOrientation(face)
		require.NoError(t, err)
		require.Equal(t, wantOrientation, orientation)
		lat, err := f.PropertyFloat64("lat")
		require.NoError(t, err)
		want, err := p.Lat(face)
		require.NoError(t, err)
		require.InDelta(t, want, lat, 1e-6)
	}
}

func TestFaceCollection_RoundTrip(t *testing.T) {
	p := isea.MustNew(isea.WithSymmetricEquator())
	fc, err := FaceCollection(p, 2)
	require.NoError(t, err)

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	got, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, got.Features, isea.NumberOfFaces)

	for face, f := range got.Features {
		id, err := f.PropertyFloat64("face")
		require.NoError(t, err)
		require.Equal(t, float64(face), id)
		require.Equal(t, fc.Features[face].Geometry.Polygon, f.Geometry.Polygon)
	}
}

func TestFaceFeature_InvalidFace(t *testing.T) {
	_, err := FaceFeature(isea.MustNew(), -1, 4)
	require.Error(t, err)
}

func TestBoxCollection(t *testing.T) {
	p := isea.MustNew(isea.WithOrientation(10, 20))
	boxes := p.RotateBoundingBox(-10, 10, 170, -170)
	require.Len(t, boxes, 2)

	fc := BoxCollection(boxes)
	require.Len(t, fc.Features, 2)
	for i, f := range fc.Features {
		index, err := f.PropertyInt("index")
		require.NoError(t, err)
		require.Equal(t, i, index)

		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 5)
		require.Equal(t, ring[0], ring[4])
		require.Equal(t, []float64{boxes[i].LonMin, boxes[i].LatMin, boxes[i].LonMax, boxes[i].LatMax}, f.BoundingBox)
	}
}

func TestBoxCollection_Full(t *testing.T) {
	fc := BoxCollection([]coord.Box{coord.FullBox})
	require.Equal(t, []float64{-180, -90, 180, 90}, fc.Features[0].BoundingBox)
}
