package isea

import (
	"math"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/trig"
)

// ToCanonical rotates a geographic coordinate into the frame of the
// icosahedron: first by the orientation longitude around the polar axis,
// then by the orientation latitude.
func (p *Projection) ToCanonical(c coord.GeoCoordinate) coord.GeoCoordinate {
	if p.orient.IsZero() {
		return c
	}
	return rotate(c.Lat, c.Lon+p.orient.Lon, p.orient.Lat)
}

// FromCanonical is the inverse of ToCanonical.
func (p *Projection) FromCanonical(c coord.GeoCoordinate) coord.GeoCoordinate {
	if p.orient.IsZero() {
		return c
	}
	r := rotate(c.Lat, c.Lon, -p.orient.Lat)
	r.Lon -= p.orient.Lon
	return r
}

// rotate turns the sphere by angle degrees around the axis through
// longitudes 90 and -90 of the equator.
func rotate(lat, lon, angle float64) coord.GeoCoordinate {
	sinAngle, cosAngle := trig.Sin(angle), trig.Cos(angle)
	sinLat, cosLat := trig.Sin(lat), trig.Cos(lat)
	sinLon, cosLon := trig.Sin(lon), trig.Cos(lon)
	return coord.GeoCoordinate{
		Lat: trig.Asin(trig.Clamp(sinLat*cosAngle + cosLon*cosLat*sinAngle)),
		Lon: trig.Atan2(sinLon*cosLat, cosLon*cosLat*cosAngle-sinLat*sinAngle),
	}
}

// RotateBoundingBox returns boxes in the canonical frame that cover the
// rectangle [lat0, lat1] x [lon0, lon1]. A rectangle with lon0 > lon1 crosses
// the antimeridian and is split in two, so one or two boxes are returned.
//
// The box is derived from the rotated corners and the midpoints of the two
// meridian edges. Whether a pole lies inside is estimated from a sign change
// of the rotated latitude along the most central longitude. The estimate
// alone misses poles whose preimage lies inside the rectangle away from that
// longitude, so the preimage of each pole is also tested against the
// rectangle. This departs from the heuristic-only rotation: such rectangles
// get boxes extended to the pole and spanning all longitudes, where the
// heuristic alone returns boxes that exclude the pole.
func (p *Projection) RotateBoundingBox(lat0, lat1, lon0, lon1 float64) []coord.Box {
	if lon0 <= lon1 {
		return []coord.Box{p.rotateBox(lat0, lat1, lon0, lon1)}
	}
	return []coord.Box{
		p.rotateBox(lat0, lat1, lon0, 180),
		p.rotateBox(lat0, lat1, -180, lon1),
	}
}

func (p *Projection) rotateBox(lat0, lat1, lon0, lon1 float64) coord.Box {
	if lon1-lon0 >= 360 && lat1-lat0 >= 180 {
		return coord.FullBox
	}

	midLat := (lat0 + lat1) / 2
	points := [...]coord.GeoCoordinate{
		p.ToCanonical(coord.GeoCoordinate{Lat: lat0, Lon: lon0}),
		p.ToCanonical(coord.GeoCoordinate{Lat: lat1, Lon: lon0}),
		p.ToCanonical(coord.GeoCoordinate{Lat: lat0, Lon: lon1}),
		p.ToCanonical(coord.GeoCoordinate{Lat: lat1, Lon: lon1}),
		p.ToCanonical(coord.GeoCoordinate{Lat: midLat, Lon: lon0}),
		p.ToCanonical(coord.GeoCoordinate{Lat: midLat, Lon: lon1}),
	}
	b := coord.Box{
		LatMin: math.Inf(1), LatMax: math.Inf(-1),
		LonMin: math.Inf(1), LonMax: math.Inf(-1),
	}
	for _, pt := range points {
		b.LatMin = math.Min(b.LatMin, pt.Lat)
		b.LatMax = math.Max(b.LatMax, pt.Lat)
		b.LonMin = math.Min(b.LonMin, pt.Lon)
		b.LonMax = math.Max(b.LonMax, pt.Lon)
	}

	var lonMostCentral float64
	if b.LonMin*b.LonMax > 0 {
		lonMostCentral = math.Min(math.Abs(b.LonMin), math.Abs(b.LonMax))
	}
	s0 := p.rotatedSinLat(lat0, lonMostCentral)
	s1 := p.rotatedSinLat(lat1, lonMostCentral)
	north := s0 < 0 && 0 < s1
	south := s1 < 0 && 0 < s0

	rect := coord.Box{LatMin: lat0, LatMax: lat1, LonMin: lon0, LonMax: lon1}
	north = north || rect.Contains(p.FromCanonical(coord.GeoCoordinate{Lat: 90}).NormalizeLon(), 0)
	south = south || rect.Contains(p.FromCanonical(coord.GeoCoordinate{Lat: -90}).NormalizeLon(), 0)

	switch {
	case north && south:
		return coord.FullBox
	case north:
		return coord.Box{LatMin: b.LatMin, LatMax: 90, LonMin: -180, LonMax: 180}
	case south:
		return coord.Box{LatMin: -90, LatMax: b.LatMax, LonMin: -180, LonMax: 180}
	}
	return b
}

// rotatedSinLat is the sine of the rotated latitude of (lat, lon).
func (p *Projection) rotatedSinLat(lat, lon float64) float64 {
	return trig.Sin(lat)*trig.Cos(p.orient.Lat) +
		trig.Cos(lon+p.orient.Lon)*trig.Cos(lat)*trig.Sin(p.orient.Lat)
}
