// Package facegeo builds geographic outlines of icosahedron faces and
// bounding boxes and exports them as GeoJSON.
package facegeo

import (
	"math"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/isea"
)

// poleEps is the latitude tolerance for treating a vertex as a pole.
const poleEps = 1e-6

// Vertices returns the corners of face in its plane, counter-clockwise and
// starting at the apex.
func Vertices(p *isea.Projection, face int) ([3]coord.FaceCoordinate, error) {
	orientation, err := p.FaceOrientation(face)
	if err != nil {
		return [3]coord.FaceCoordinate{}, err
	}
	halfBase := p.LengthOfTriangleBase() / 2
	r := halfBase * 2 / math.Sqrt(3)
	if orientation > 0 {
		return [3]coord.FaceCoordinate{
			{Face: face, X: 0, Y: r},
			{Face: face, X: -halfBase, Y: -r / 2},
			{Face: face, X: halfBase, Y: -r / 2},
		}, nil
	}
	return [3]coord.FaceCoordinate{
		{Face: face, X: 0, Y: -r},
		{Face: face, X: halfBase, Y: r / 2},
		{Face: face, X: -halfBase, Y: r / 2},
	}, nil
}

// Outline returns the boundary of face on the sphere. Each edge is split into
// densify segments in the plane of the face before it is inverse projected.
//
// Longitudes are unwrapped along the ring, so a face crossing the
// antimeridian has coordinates beyond ±180. A face containing a pole is
// closed along that pole.
func Outline(p *isea.Projection, face, densify int) (*geom.Polygon, error) {
	if densify < 1 {
		densify = 1
	}
	vertices, err := Vertices(p, face)
	if err != nil {
		return nil, err
	}

	points := make([]coord.GeoCoordinate, 0, 3*densify)
	for i, a := range vertices {
		b := vertices[(i+1)%3]
		for k := 0; k < densify; k++ {
			t := float64(k) / float64(densify)
			g, err := p.IcosahedronToSphere(coord.FaceCoordinate{
				Face: face,
				X:    a.X + t*(b.X-a.X),
				Y:    a.Y + t*(b.Y-a.Y),
			})
			if err != nil {
				return nil, errors.Wrapf(err, "outline of face %d", face)
			}
			points = append(points, g)
		}
	}

	center, err := p.IcosahedronToSphere(coord.FaceCoordinate{Face: face})
	if err != nil {
		return nil, errors.Wrapf(err, "center of face %d", face)
	}
	ring := unwrapRing(expandPoles(points), center)
	return geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{ring})
}

// expandPoles replaces each vertex lying on a pole, where the longitude is
// undefined, by two pole points carrying the longitudes of its neighbours.
func expandPoles(points []coord.GeoCoordinate) []coord.GeoCoordinate {
	n := len(points)
	out := make([]coord.GeoCoordinate, 0, n+2)
	for i, c := range points {
		if math.Abs(c.Lat) < 90-poleEps {
			out = append(out, c)
			continue
		}
		lat := math.Copysign(90, c.Lat)
		prev := points[(i+n-1)%n]
		next := points[(i+1)%n]
		out = append(out,
			coord.GeoCoordinate{Lat: lat, Lon: prev.Lon},
			coord.GeoCoordinate{Lat: lat, Lon: next.Lon})
	}
	return out
}

// unwrapRing converts points to a closed (lon, lat) ring with continuous
// longitudes, shifted by whole turns to lie around the longitude of center.
// If the ring winds around a pole, it is closed along the pole on the side
// of center.
func unwrapRing(points []coord.GeoCoordinate, center coord.GeoCoordinate) []geom.Coord {
	ring := make([]geom.Coord, 0, len(points)+4)
	lon := coord.NormalizeLon(points[0].Lon)
	first := lon
	minLon, maxLon := lon, lon
	for i, c := range points {
		if i > 0 {
			lon += coord.NormalizeLon(c.Lon - lon)
		}
		minLon, maxLon = min(minLon, lon), max(maxLon, lon)
		ring = append(ring, geom.Coord{lon, c.Lat})
	}
	closing := lon + coord.NormalizeLon(first-lon)
	if math.Abs(closing-first) > 180 {
		pole := math.Copysign(90, center.Lat)
		ring = append(ring,
			geom.Coord{closing, points[0].Lat},
			geom.Coord{closing, pole},
			geom.Coord{first, pole})
	}
	ring = append(ring, geom.Coord{first, points[0].Lat})

	if shift := 360 * math.Round(((minLon+maxLon)/2-center.Lon)/360); shift != 0 {
		for _, c := range ring {
			c[0] -= shift
		}
	}
	return ring
}
