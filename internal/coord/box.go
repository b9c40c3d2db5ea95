package coord

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// Box is an axis-aligned latitude/longitude rectangle in degrees.
// LonMin <= LonMax; boxes crossing the antimeridian are represented as two boxes.
type Box struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// FullBox covers the whole sphere.
var FullBox = Box{LatMin: -90, LatMax: 90, LonMin: -180, LonMax: 180}

// IsFull reports whether b covers the whole sphere.
func (b Box) IsFull() bool {
	return b == FullBox
}

// Contains reports whether c lies inside b, allowing a tolerance of eps degrees.
// A pole is contained whenever the box reaches it, whatever the longitude.
func (b Box) Contains(c GeoCoordinate, eps float64) bool {
	if c.Lat < b.LatMin-eps || c.Lat > b.LatMax+eps {
		return false
	}
	if (c.Lat >= 90-eps && b.LatMax >= 90-eps) || (c.Lat <= -90+eps && b.LatMin <= -90+eps) {
		return true
	}
	return c.Lon >= b.LonMin-eps && c.Lon <= b.LonMax+eps
}

// Bounds returns b as go-geom bounds with X as longitude and Y as latitude.
func (b Box) Bounds() *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(b.LonMin, b.LatMin, b.LonMax, b.LatMax)
}

// Polygon returns the outline of b as a closed ring in (lon, lat) order.
func (b Box) Polygon() *geom.Polygon {
	return b.Bounds().Polygon()
}

func (b Box) String() string {
	return fmt.Sprintf("lat [%.6f, %.6f] lon [%.6f, %.6f]", b.LatMin, b.LatMax, b.LonMin, b.LonMax)
}
