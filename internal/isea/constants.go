package isea

import (
	"math"

	"github.com/pspoerri/isea/internal/trig"
)

// Fixed angles of the icosahedron, in degrees, named after Snyder (1992).
const (
	// NumberOfFaces is the number of faces of the icosahedron.
	NumberOfFaces = 20

	// sphericalAngle is G, half the angle at the center of a spherical face
	// triangle between two of its vertices.
	sphericalAngle = 36
	// planarAngle is theta, the corresponding angle of the planar triangle.
	planarAngle = 30
	// faceLonSpacing is half the difference in longitude between two
	// horizontally adjacent faces.
	faceLonSpacing = 36
	// azMax is the azimuth period 2(90-theta) of the three-fold face symmetry.
	azMax = 2 * (90 - planarAngle)

	// precision is the convergence threshold of the inverse, in degrees.
	precision = 1e-9
	// maxNewtonIterations bounds the inverse solve. It converges in a handful
	// of iterations everywhere except at a degenerate derivative.
	maxNewtonIterations = 50
)

// Distortion bounds published for the projection.
const (
	maxAngularDistortion = 17.27
	maxScaleVariation    = 1.163
	minScaleVariation    = 0.860
)

// goldenRatio is (1 + sqrt 5) / 2.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// constants holds the values derived once from the icosahedron geometry and
// the sphere radius. It is never modified after newConstants returns.
type constants struct {
	radius float64 // R, radius of the sphere

	vertexAngle float64 // g, angle between a face center and its vertices
	e           float64 // E, latitude of the centers of the polar faces
	f           float64 // F, latitude of the centers of the equatorial faces
	ef          float64 // E - F, latitude of the band boundaries

	radiusRatio float64 // R'/R
	rPrime      float64 // R', radius of the sphere touching the faces
	twoRPrime   float64 // 2R'
	halfBase    float64 // half the length of a triangle side

	tanVertex             float64 // tan g
	cosSpherical          float64 // cos G
	cotTheta              float64 // cot theta
	twoCotTheta           float64 // 2 cot theta
	areaScale             float64 // pi R^2 / 180
	rTanVertex            float64 // R' tan g, the circumradius of a face in its plane
	rTanVertex2           float64 // (R' tan g)^2
	sinSphericalCosVertex float64 // sin G cos g
	sphericalMinus180     float64 // G - 180

	lats [NumberOfFaces]float64
	lons [NumberOfFaces]float64

	maxIterations int // bound of the inverse solve
}

func newConstants(radius float64) constants {
	var c constants
	c.radius = radius
	c.maxIterations = maxNewtonIterations

	// F = atan(1 / (2 phi^2)); equivalently 90 + g - 2 atan(phi).
	c.f = trig.Atan(1 / (2 * goldenRatio * goldenRatio))
	c.vertexAngle = c.f + 2*trig.Atan(goldenRatio) - 90
	c.e = 90 - c.vertexAngle
	c.ef = c.e - c.f

	c.radiusRatio = math.Sqrt((sphericalAngle-planarAngle)*math.Pi/(45*trig.Sin(2*planarAngle))) /
		trig.Tan(c.vertexAngle)
	c.rPrime = c.radiusRatio * radius
	c.twoRPrime = 2 * c.rPrime
	// The half base scales with R', not with R as printed in Snyder's paper.
	c.halfBase = c.rPrime * trig.Tan(c.vertexAngle) * math.Sqrt(3) / 2

	c.tanVertex = trig.Tan(c.vertexAngle)
	c.cosSpherical = trig.Cos(sphericalAngle)
	c.cotTheta = trig.Cot(planarAngle)
	c.twoCotTheta = 2 * c.cotTheta
	c.areaScale = math.Pi * radius * radius / 180
	c.rTanVertex = c.rPrime * c.tanVertex
	c.rTanVertex2 = c.rTanVertex * c.rTanVertex
	c.sinSphericalCosVertex = trig.Sin(sphericalAngle) * trig.Cos(c.vertexAngle)
	c.sphericalMinus180 = sphericalAngle - 180

	// Faces 0-4 surround the north pole and 15-19 the south pole; 5-9 and
	// 10-14 form the equatorial belt. Rings 0-4 and 5-9 share longitudes,
	// as do 10-14 and 15-19, offset by 36 degrees.
	for i := 0; i < 5; i++ {
		upper := float64((2*i - 4) * faceLonSpacing)
		lower := float64((2*i - 3) * faceLonSpacing)
		c.lats[i], c.lons[i] = c.e, upper
		c.lats[i+5], c.lons[i+5] = c.f, upper
		c.lats[i+10], c.lons[i+10] = -c.f, lower
		c.lats[i+15], c.lons[i+15] = -c.e, lower
	}
	return c
}
