package isea

import (
	"math"

	"github.com/pspoerri/isea/internal/coord"
)

// Lat returns the latitude of the center of face.
func (p *Projection) Lat(face int) (float64, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	return p.c.lats[face], nil
}

// Lon returns the longitude of the center of face.
func (p *Projection) Lon(face int) (float64, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	return p.c.lons[face], nil
}

// Center returns the center of face in the canonical frame.
func (p *Projection) Center(face int) (coord.GeoCoordinate, error) {
	if err := checkFace(face); err != nil {
		return coord.GeoCoordinate{}, err
	}
	return coord.GeoCoordinate{Lat: p.c.lats[face], Lon: p.c.lons[face]}, nil
}

// LatMin returns the minimum latitude of face.
func (p *Projection) LatMin(face int) (float64, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	if d := faceOrientation(face); d < 0 {
		return p.vertexLat(face, d), nil
	}
	return p.edgeLat(face, 1), nil
}

// LatMax returns the maximum latitude of face.
func (p *Projection) LatMax(face int) (float64, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	if d := faceOrientation(face); d < 0 {
		return p.edgeLat(face, d), nil
	}
	return p.vertexLat(face, 1), nil
}

// edgeLat is the latitude of the side of the face opposite its apex.
func (p *Projection) edgeLat(face, upright int) float64 {
	return p.c.lats[face] - float64(upright)*(p.c.e+p.c.f-p.c.vertexAngle)
}

// vertexLat is the latitude of the apex of the face, clamped to the poles.
func (p *Projection) vertexLat(face, upright int) float64 {
	lat := p.c.lats[face] + float64(upright)*p.c.vertexAngle
	return math.Max(-90, math.Min(90, lat))
}

// LonMin returns the minimum longitude of face. Faces crossing the
// antimeridian have LonMin > LonMax.
func (p *Projection) LonMin(face int) (float64, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	lon := p.c.lons[face] - faceLonSpacing
	if lon < -180 {
		lon += 360
	}
	return lon, nil
}

// LonMax returns the maximum longitude of face.
func (p *Projection) LonMax(face int) (float64, error) {
	if err := checkFace(face); err != nil {
		return 0, err
	}
	lon := p.c.lons[face] + faceLonSpacing
	if lon > 180 {
		lon -= 360
	}
	return lon, nil
}

// FaceBounds returns the latitude and longitude extent of face in the
// canonical frame.
func (p *Projection) FaceBounds(face int) (coord.Box, error) {
	if err := checkFace(face); err != nil {
		return coord.Box{}, err
	}
	// The accessors cannot fail once the face is valid.
	latMin, _ := p.LatMin(face)
	latMax, _ := p.LatMax(face)
	lonMin, _ := p.LonMin(face)
	lonMax, _ := p.LonMax(face)
	return coord.Box{LatMin: latMin, LatMax: latMax, LonMin: lonMin, LonMax: lonMax}, nil
}
