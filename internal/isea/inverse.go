package isea

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/trig"
)

const (
	// minSinH is the smallest |sin H| for which the Newton step is evaluated.
	minSinH = 1e-15
	// domainSlack is how far sin(z/2) may exceed 1 through rounding.
	domainSlack = 1e-9
)

// unproject maps a face coordinate to the canonical frame. It returns the
// number of Newton-Raphson iterations used.
func (p *Projection) unproject(fc coord.FaceCoordinate) (coord.GeoCoordinate, int, error) {
	c := &p.c
	lat0, lon0 := c.lats[fc.Face], c.lons[fc.Face]

	rho := math.Hypot(fc.X, fc.Y)
	if rho == 0 {
		return coord.GeoCoordinate{Lat: lat0, Lon: lon0}, 0, nil
	}
	az, adjustment := p.normalizeAzimuth(fc.Face, trig.Atan2(fc.X, fc.Y))

	sinAz, cosAz := trig.Sin(az), trig.Cos(az)
	// On the azimuth of a vertex sin Az' is 0 and the cotangent is infinite;
	// the area then evaluates to its limit 0.
	cotAz := cosAz / sinAz
	area := c.rTanVertex2 / (2 * (cotAz + c.cotTheta))

	azEarth, n, err := c.solveAzimuth(area, az)
	if err != nil {
		return coord.GeoCoordinate{}, n, errors.Wrapf(err, "face %d (%v, %v)", fc.Face, fc.X, fc.Y)
	}
	if glog.V(2) {
		glog.Infof("isea: inverse of %v converged after %d iterations", fc, n)
	}

	scale := c.scale(sinAz, cosAz, trig.Sin(azEarth), trig.Cos(azEarth))
	sinHalfZ := rho / (c.twoRPrime * scale)
	if sinHalfZ > 1+domainSlack {
		return coord.GeoCoordinate{}, n, errors.Wrapf(ErrOutsideDomain, "face %d (%v, %v)", fc.Face, fc.X, fc.Y)
	}
	z := 2 * trig.Asin(trig.Clamp(sinHalfZ))
	azEarth -= adjustment

	sinLat0, cosLat0 := trig.Sin(lat0), trig.Cos(lat0)
	sinZ, cosZ := trig.Sin(z), trig.Cos(z)
	lat := trig.Asin(trig.Clamp(sinLat0*cosZ + cosLat0*sinZ*trig.Cos(azEarth)))
	lon := lon0 + trig.Atan2(trig.Sin(azEarth)*sinZ*cosLat0, cosZ-sinLat0*trig.Sin(lat))
	return coord.GeoCoordinate{Lat: lat, Lon: lon}, n, nil
}

// solveAzimuth finds the earth azimuth Az whose spherical triangle has the
// given area by Newton-Raphson on
//
//	F(Az) = area / (pi R^2 / 180) - (G - 180) - H(Az) - Az = 0,
//
// starting from the planar azimuth.
func (c *constants) solveAzimuth(area, az float64) (float64, int, error) {
	k := area/c.areaScale - c.sphericalMinus180
	azEarth := az
	for n := 1; n <= c.maxIterations; n++ {
		sinAzEarth, cosAzEarth := trig.Sin(azEarth), trig.Cos(azEarth)
		h := c.sphericalExcess(sinAzEarth, cosAzEarth)
		sinH := trig.Sin(h)
		if math.Abs(sinH) < minSinH {
			return azEarth, n, errors.Wrapf(ErrDegenerateDerivative, "Az=%v", azEarth)
		}
		fAz := k - h - azEarth
		dfAz := (cosAzEarth*c.sinSphericalCosVertex+sinAzEarth*c.cosSpherical)/sinH - 1
		if dfAz == 0 || math.IsNaN(dfAz) {
			return azEarth, n, errors.Wrapf(ErrDegenerateDerivative, "Az=%v", azEarth)
		}
		delta := -fAz / dfAz
		azEarth += delta
		if math.Abs(delta) <= precision {
			return azEarth, n, nil
		}
	}
	return azEarth, c.maxIterations, errors.Wrapf(ErrNoConvergence, "after %d iterations", c.maxIterations)
}
