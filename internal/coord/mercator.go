package coord

import "math"

const (
	// EarthCircumference is the equatorial circumference in meters.
	EarthCircumference = 40075016.685578488
	// OriginShift is half the earth's circumference.
	OriginShift = EarthCircumference / 2.0
	// MaxMercatorLat is the latitude at which the Web Mercator world is square.
	MaxMercatorLat = 85.05112877980659
)

// WebMercator implements the Projection interface for EPSG:3857.
type WebMercator struct{}

func (w *WebMercator) EPSG() int { return 3857 }

func (w *WebMercator) ToWGS84(x, y float64) (lon, lat float64) {
	lon = (x / OriginShift) * 180.0
	lat = (y / OriginShift) * 180.0
	lat = 180.0 / math.Pi * (2.0*math.Atan(math.Exp(lat*math.Pi/180.0)) - math.Pi/2.0)
	return
}

// FromWGS84 clamps the latitude to the Web Mercator range before projecting.
func (w *WebMercator) FromWGS84(lon, lat float64) (x, y float64) {
	lat = math.Max(-MaxMercatorLat, math.Min(MaxMercatorLat, lat))
	x = lon * OriginShift / 180.0
	y = math.Log(math.Tan((90.0+lat)*math.Pi/360.0)) / (math.Pi / 180.0)
	y = y * OriginShift / 180.0
	return
}

func (w *WebMercator) Extent() (minX, minY, maxX, maxY float64) {
	return -OriginShift, -OriginShift, OriginShift, OriginShift
}
