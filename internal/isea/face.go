package isea

import (
	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/trig"
)

// Bits of face.filled.
const (
	hasSinLat uint8 = 1 << iota
	hasCosLat
	hasSinLat0
	hasCosLat0
	hasSinDLon
	hasCosDLon
	hasZ
)

// face binds a face to one point and caches the trigonometric terms shared by
// face selection and the forward projection. Each term is computed at most
// once. A face lives for a single projection call.
type face struct {
	index      int
	c          coord.GeoCoordinate
	lat0, lon0 float64

	filled           uint8
	sinLat, cosLat   float64
	sinLat0, cosLat0 float64
	sinDLon, cosDLon float64
	z                float64
}

func (p *Projection) newFace(index int, c coord.GeoCoordinate) face {
	return face{index: index, c: c, lat0: p.c.lats[index], lon0: p.c.lons[index]}
}

func (f *face) has(bit uint8) bool {
	if f.filled&bit != 0 {
		return true
	}
	f.filled |= bit
	return false
}

func (f *face) SinLat() float64 {
	if !f.has(hasSinLat) {
		f.sinLat = trig.Sin(f.c.Lat)
	}
	return f.sinLat
}

func (f *face) CosLat() float64 {
	if !f.has(hasCosLat) {
		f.cosLat = trig.Cos(f.c.Lat)
	}
	return f.cosLat
}

func (f *face) SinLat0() float64 {
	if !f.has(hasSinLat0) {
		f.sinLat0 = trig.Sin(f.lat0)
	}
	return f.sinLat0
}

func (f *face) CosLat0() float64 {
	if !f.has(hasCosLat0) {
		f.cosLat0 = trig.Cos(f.lat0)
	}
	return f.cosLat0
}

// SinDLon is sin(lon - lon0).
func (f *face) SinDLon() float64 {
	if !f.has(hasSinDLon) {
		f.sinDLon = trig.Sin(f.c.Lon - f.lon0)
	}
	return f.sinDLon
}

// CosDLon is cos(lon - lon0).
func (f *face) CosDLon() float64 {
	if !f.has(hasCosDLon) {
		f.cosDLon = trig.Cos(f.c.Lon - f.lon0)
	}
	return f.cosDLon
}

// Z is the great-circle distance from the face center to the point, by the
// spherical law of cosines.
func (f *face) Z() float64 {
	if !f.has(hasZ) {
		f.z = trig.Acos(trig.Clamp(f.SinLat0()*f.SinLat() + f.CosLat0()*f.CosLat()*f.CosDLon()))
	}
	return f.z
}
