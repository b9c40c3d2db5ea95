// Package trig provides trigonometric functions that take and return angles
// in degrees. The projection formulas are written in degrees throughout, so
// keeping the conversions in one place avoids scattering pi/180 factors.
package trig

import (
	"math"

	"github.com/golang/geo/s1"
)

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

func Sin(deg float64) float64 { return math.Sin(Radians(deg)) }
func Cos(deg float64) float64 { return math.Cos(Radians(deg)) }
func Tan(deg float64) float64 { return math.Tan(Radians(deg)) }

// Cot returns the cotangent of deg. It is +/-Inf where the tangent is zero.
func Cot(deg float64) float64 { return 1 / Tan(deg) }

func Asin(x float64) float64     { return Degrees(math.Asin(x)) }
func Acos(x float64) float64     { return Degrees(math.Acos(x)) }
func Atan(x float64) float64     { return Degrees(math.Atan(x)) }
func Atan2(y, x float64) float64 { return Degrees(math.Atan2(y, x)) }

// Clamp limits x to [-1, 1]. Rounding can push a cosine computed from a sum of
// products marginally outside the domain of Asin and Acos.
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
