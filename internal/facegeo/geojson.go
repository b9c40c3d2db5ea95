package facegeo

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/isea"
)

// FaceFeature returns the outline of face as a GeoJSON feature with the
// properties face, orientation, lat and lon (the face center).
func FaceFeature(p *isea.Projection, face, densify int) (*geojson.Feature, error) {
	poly, err := Outline(p, face, densify)
	if err != nil {
		return nil, err
	}
	center, err := p.IcosahedronToSphere(coord.FaceCoordinate{Face: face})
	if err != nil {
		return nil, err
	}
	orientation, err := p.FaceOrientation(face)
	if err != nil {
		return nil, err
	}

	f := polygonFeature(poly)
	f.SetProperty("face", face)
	f.SetProperty("orientation", orientation)
	f.SetProperty("lat", center.Lat)
	f.SetProperty("lon", center.Lon)
	return f, nil
}

// FaceCollection returns the outlines of all faces.
func FaceCollection(p *isea.Projection, densify int) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for face := 0; face < p.NumberOfFaces(); face++ {
		f, err := FaceFeature(p, face, densify)
		if err != nil {
			return nil, err
		}
		fc.AddFeature(f)
	}
	return fc, nil
}

// BoxCollection returns boxes as rectangular polygon features, numbered in
// the order given.
func BoxCollection(boxes []coord.Box) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, b := range boxes {
		f := polygonFeature(b.Polygon())
		f.SetProperty("index", i)
		fc.AddFeature(f)
	}
	return fc
}

func polygonFeature(poly *geom.Polygon) *geojson.Feature {
	coords := poly.Coords()
	rings := make([][][]float64, len(coords))
	for i, ring := range coords {
		rings[i] = make([][]float64, len(ring))
		for j, c := range ring {
			rings[i][j] = []float64{c.X(), c.Y()}
		}
	}
	f := geojson.NewPolygonFeature(rings)
	b := poly.Bounds()
	f.BoundingBox = []float64{b.Min(0), b.Min(1), b.Max(0), b.Max(1)}
	return f
}
