package coord

import "github.com/pkg/errors"

// Projection converts between the planar coordinates of a raster grid and
// WGS84 longitude/latitude. It describes the output grid of rendered face maps.
type Projection interface {
	// ToWGS84 converts grid CRS coordinates to longitude/latitude (degrees).
	ToWGS84(x, y float64) (lon, lat float64)

	// FromWGS84 converts longitude/latitude (degrees) to grid CRS coordinates.
	FromWGS84(lon, lat float64) (x, y float64)

	// Extent returns the CRS bounds covering the world.
	Extent() (minX, minY, maxX, maxY float64)

	// EPSG returns the EPSG code for this projection.
	EPSG() int
}

// ForEPSG returns a Projection for the given EPSG code.
func ForEPSG(epsg int) (Projection, error) {
	switch epsg {
	case 4326:
		return &PlateCarree{}, nil
	case 3857:
		return &WebMercator{}, nil
	default:
		return nil, errors.Errorf("unsupported EPSG code: %d (supported: 4326, 3857)", epsg)
	}
}

// ForName maps the grid names accepted on the command line to a Projection.
func ForName(name string) (Projection, error) {
	switch name {
	case "equirectangular", "platecarree", "4326":
		return ForEPSG(4326)
	case "mercator", "webmercator", "3857":
		return ForEPSG(3857)
	default:
		return nil, errors.Errorf("unknown grid projection %q (supported: equirectangular, mercator)", name)
	}
}

// PlateCarree is the identity projection of EPSG:4326 (x = lon, y = lat).
type PlateCarree struct{}

func (p *PlateCarree) ToWGS84(x, y float64) (lon, lat float64)   { return x, y }
func (p *PlateCarree) FromWGS84(lon, lat float64) (x, y float64) { return lon, lat }
func (p *PlateCarree) Extent() (minX, minY, maxX, maxY float64)  { return -180, -90, 180, 90 }
func (p *PlateCarree) EPSG() int                                 { return 4326 }
