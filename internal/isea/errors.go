package isea

import "github.com/pkg/errors"

var (
	// ErrInvalidFace is returned for face indices outside [0, NumberOfFaces).
	ErrInvalidFace = errors.New("face index out of range [0, 19]")
	// ErrNoConvergence is returned when the inverse solve exceeds its
	// iteration limit.
	ErrNoConvergence = errors.New("inverse projection did not converge")
	// ErrDegenerateDerivative is returned when the derivative of the inverse
	// solve is undefined, which happens where sin H vanishes.
	ErrDegenerateDerivative = errors.New("inverse projection derivative is undefined")
	// ErrOutsideDomain is returned by the inverse for planar coordinates
	// farther from the face center than any point of the sphere projects.
	ErrOutsideDomain = errors.New("face coordinate outside the projection domain")
	// ErrInvalidRadius is returned by New for a non-positive sphere radius.
	ErrInvalidRadius = errors.New("sphere radius must be positive")
)

func checkFace(face int) error {
	if face < 0 || face >= NumberOfFaces {
		return errors.Wrapf(ErrInvalidFace, "face %d", face)
	}
	return nil
}
