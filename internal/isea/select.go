package isea

import "github.com/pspoerri/isea/internal/coord"

// Longitude boundaries of the faces around the poles.
var (
	northCapLons  = [...]float64{-108, -36, 36, 108}
	northCapFaces = [...]int{0, 1, 2, 3, 4}
	southCapLons  = [...]float64{-144, -72, 0, 72, 144}
	southCapFaces = [...]int{19, 15, 16, 17, 18, 19}
)

// polarMargin is how much nearer, in degrees, a polar face center must be
// than the belt candidate to win.
const polarMargin = 1e-9

// beltLons splits the equatorial belt into ten 36 degree sectors.
// beltCandidates lists the upper and the lower face bordering each sector.
var beltLons = [...]float64{-144, -108, -72, -36, 0, 36, 72, 108, 144}

var beltCandidates = [10][2]int{
	{5, 14}, {5, 10}, {6, 10}, {6, 11}, {7, 11},
	{7, 12}, {8, 12}, {8, 13}, {9, 13}, {9, 14},
}

// selectFace returns the face containing c, which must be in the canonical frame.
func (p *Projection) selectFace(c coord.GeoCoordinate) face {
	switch {
	case c.Lat > p.c.ef:
		return p.newFace(northCapFaces[sector(c.Lon, northCapLons[:])], c)
	case c.Lat < -p.c.ef:
		return p.newFace(southCapFaces[sector(c.Lon, southCapLons[:])], c)
	}
	i := sector(c.Lon, beltLons[:])
	// Face boundaries in the belt are not meridians, so the nearest center
	// decides. The polar faces reach down to the vertices at latitude
	// g - F, below E - F, so the polar faces adjacent to the two belt
	// candidates compete as well.
	best := p.newFace(beltCandidates[i][0], c)
	if lower := p.newFace(beltCandidates[i][1], c); lower.Z() < best.Z() {
		best = lower
	}
	for _, index := range [...]int{beltCandidates[i][0] - 5, beltCandidates[i][1] + 5} {
		// Points on a shared edge stay with the belt face.
		if polar := p.newFace(index, c); polar.Z() < best.Z()-polarMargin {
			best = polar
		}
	}
	return best
}

// sector returns the number of boundaries that lon is not less than.
func sector(lon float64, bounds []float64) int {
	for i, b := range bounds {
		if lon < b {
			return i
		}
	}
	return len(bounds)
}
