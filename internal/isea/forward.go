package isea

import (
	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/trig"
)

// project maps the point of f onto the plane of its face.
func (p *Projection) project(f *face) coord.FaceCoordinate {
	c := &p.c

	// Azimuth of the point seen from the face center.
	azEarth := trig.Atan2(f.CosLat()*f.SinDLon(), f.CosLat0()*f.SinLat()-f.SinLat0()*f.CosLat()*f.CosDLon())
	azEarth, adjustment := p.normalizeAzimuth(f.index, azEarth)

	sinAzEarth, cosAzEarth := trig.Sin(azEarth), trig.Cos(azEarth)
	h := c.sphericalExcess(sinAzEarth, cosAzEarth)
	// Area of the spherical triangle between the face center, the nearest
	// edge and the point's azimuth.
	area := (azEarth + c.sphericalMinus180 + h) * c.areaScale
	az := trig.Atan2(2*area, c.rTanVertex2-area*c.twoCotTheta)

	sinAz, cosAz := trig.Sin(az), trig.Cos(az)
	scale := c.scale(sinAz, cosAz, sinAzEarth, cosAzEarth)
	// sin(z/2) vanishes at the face center, so rho is 0 there without any
	// division by z.
	rho := c.twoRPrime * scale * trig.Sin(f.Z()/2)

	az -= adjustment
	return coord.FaceCoordinate{
		Face: f.index,
		X:    rho * trig.Sin(az),
		Y:    rho * trig.Cos(az),
	}
}

// normalizeAzimuth rotates an azimuth of the given face into [0, azMax], the
// sector in which Snyder's formulas hold. Inverted faces are first turned by
// 180 degrees. It returns the rotated azimuth and the total rotation applied.
func (p *Projection) normalizeAzimuth(face int, az float64) (float64, float64) {
	var adjustment float64
	if faceOrientation(face) < 0 {
		adjustment = 180
	}
	az += adjustment
	// az starts within [-180, 360], so each loop runs at most three times.
	for az < 0 {
		adjustment += azMax
		az += azMax
	}
	for az > azMax {
		adjustment -= azMax
		az -= azMax
	}
	return az, adjustment
}

// sphericalExcess returns H for the given earth azimuth.
func (c *constants) sphericalExcess(sinAzEarth, cosAzEarth float64) float64 {
	return trig.Acos(trig.Clamp(sinAzEarth*c.sinSphericalCosVertex - cosAzEarth*c.cosSpherical))
}

// scale returns the radial scale factor f = d' / (2 R' sin(q/2)).
func (c *constants) scale(sinAz, cosAz, sinAzEarth, cosAzEarth float64) float64 {
	// d' is the planar distance from the face center to the edge along Az'.
	d := c.rTanVertex / (cosAz + sinAz*c.cotTheta)
	// q is the spherical distance from the face center to the edge along Az.
	q := trig.Atan2(c.tanVertex, cosAzEarth+sinAzEarth*c.cotTheta)
	return d / (c.twoRPrime * trig.Sin(q/2))
}
