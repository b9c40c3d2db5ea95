package coord

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
)

// ErrInvalidLatitude is returned for latitudes outside [-90, 90].
var ErrInvalidLatitude = errors.New("latitude out of range [-90, 90]")

// GeoCoordinate is a position on the sphere in degrees.
type GeoCoordinate struct {
	Lat float64
	Lon float64
}

// NewGeoCoordinate validates the latitude. The longitude is kept as given.
func NewGeoCoordinate(lat, lon float64) (GeoCoordinate, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return GeoCoordinate{}, errors.Wrapf(ErrInvalidLatitude, "lat=%v", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return GeoCoordinate{}, errors.Errorf("invalid longitude %v", lon)
	}
	return GeoCoordinate{Lat: lat, Lon: lon}, nil
}

// NormalizeLon returns the coordinate with its longitude wrapped into (-180, 180].
func (c GeoCoordinate) NormalizeLon() GeoCoordinate {
	return GeoCoordinate{Lat: c.Lat, Lon: NormalizeLon(c.Lon)}
}

// LatLng converts the coordinate to an s2.LatLng.
func (c GeoCoordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// Point returns the unit vector of the coordinate.
func (c GeoCoordinate) Point() s2.Point {
	return s2.PointFromLatLng(c.LatLng())
}

// AngularDistance returns the great-circle distance between a and b in degrees.
func AngularDistance(a, b GeoCoordinate) float64 {
	return a.LatLng().Distance(b.LatLng()).Degrees()
}

func (c GeoCoordinate) String() string {
	return fmt.Sprintf("(%.9f, %.9f)", c.Lat, c.Lon)
}

// NormalizeLon wraps lon into (-180, 180].
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon <= -180 {
		lon += 360
	} else if lon > 180 {
		lon -= 360
	}
	return lon
}

// FaceCoordinate is a point in the plane of an icosahedron face. X and Y are
// relative to the face center, in the length unit of the sphere radius.
type FaceCoordinate struct {
	Face int
	X    float64
	Y    float64
}

func (c FaceCoordinate) String() string {
	return fmt.Sprintf("face %d (%.6f, %.6f)", c.Face, c.X, c.Y)
}
