package coord

import "math"

// WGS84 ellipsoid parameters.
const (
	// WGS84SemiMajorAxis is the equatorial radius in kilometres.
	WGS84SemiMajorAxis = 6378.137
	// WGS84Flattening is the flattening of the ellipsoid.
	WGS84Flattening = 1 / 298.257223563
	// WGS84AuthalicRadius is the radius in kilometres of the sphere with the
	// same surface area as the WGS84 ellipsoid.
	WGS84AuthalicRadius = 6371.0071809184747
)

// AuthalicRadius returns the radius of the sphere whose surface area equals
// that of the ellipsoid with semi-major axis a and flattening f.
func AuthalicRadius(a, f float64) float64 {
	if f == 0 {
		return a
	}
	e2 := f * (2 - f)
	e := math.Sqrt(e2)
	qp := 1 + (1-e2)/(2*e)*math.Log((1+e)/(1-e))
	return a * math.Sqrt(qp/2)
}
