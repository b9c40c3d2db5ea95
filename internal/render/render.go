// Package render rasterises the face layout of an ISEA projection onto a
// world image.
package render

import (
	"context"
	"image"
	"io"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/isea"
	"github.com/pspoerri/isea/internal/progress"
)

// Config holds face map rendering configuration.
type Config struct {
	Width       int
	Height      int
	Grid        coord.Projection // output grid; defaults to equirectangular
	Concurrency int              // defaults to GOMAXPROCS
	Shade       bool             // darken pixels towards the face vertices
	Edges       bool             // draw face boundaries
	Palette     *Palette         // defaults to DefaultPalette
	Progress    io.Writer        // progress bar output; nil disables it
}

// Stats holds rendering statistics.
type Stats struct {
	Pixels     int64
	FacePixels [isea.NumberOfFaces]int64
}

// noFace marks pixels outside the grid's valid range.
const noFace = 0xff

// Render draws the face map of p. Each pixel center is mapped from the grid
// to geographic coordinates and projected; its color identifies the face.
func Render(ctx context.Context, p *isea.Projection, cfg Config) (*image.RGBA, Stats, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, Stats{}, errors.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Grid == nil {
		cfg.Grid = &coord.PlateCarree{}
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}
	palette := &DefaultPalette
	if cfg.Palette != nil {
		palette = cfg.Palette
	}

	faces, stats, err := classify(ctx, p, cfg)
	if err != nil {
		return nil, Stats{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			i := y*cfg.Width + x
			face := faces.index[i]
			if face == noFace {
				continue
			}
			c := palette[face]
			if cfg.Shade {
				c = shade(c, faces.shade[i])
			}
			if cfg.Edges && onEdge(faces.index, cfg.Width, cfg.Height, x, y) {
				c = EdgeColor
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, stats, nil
}

// faceRaster is the per-pixel face index and shading factor.
type faceRaster struct {
	index []uint8
	shade []float64
}

// classify assigns a face to every pixel. Rows are distributed over a pool
// of workers.
func classify(ctx context.Context, p *isea.Projection, cfg Config) (faceRaster, Stats, error) {
	w, h := cfg.Width, cfg.Height
	raster := faceRaster{
		index: make([]uint8, w*h),
		shade: make([]float64, w*h),
	}
	minX, minY, maxX, maxY := cfg.Grid.Extent()
	dx := (maxX - minX) / float64(w)
	dy := (maxY - minY) / float64(h)
	// Distance from a face center to its vertices in the plane.
	circumradius := p.LengthOfTriangleBase() / math.Sqrt(3)

	var counts [isea.NumberOfFaces]atomic.Int64
	var pixels atomic.Int64

	pb := progress.New(cfg.Progress, "render", "rows", int64(h))
	defer pb.Finish()

	rows := make(chan int, cfg.Concurrency*2)
	var wg sync.WaitGroup

	for range cfg.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				gy := maxY - (float64(row)+0.5)*dy
				for col := 0; col < w; col++ {
					i := row*w + col
					lon, lat := cfg.Grid.ToWGS84(minX+(float64(col)+0.5)*dx, gy)
					if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 {
						raster.index[i] = noFace
						continue
					}
					fc := p.SphereToIcosahedron(coord.GeoCoordinate{Lat: lat, Lon: lon})
					raster.index[i] = uint8(fc.Face)
					rho := math.Hypot(fc.X, fc.Y)
					raster.shade[i] = 1 - 0.4*min(rho/circumradius, 1)
					counts[fc.Face].Add(1)
					pixels.Add(1)
				}
				pb.Increment()
			}
		}()
	}

	var err error
	for row := 0; row < h; row++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case rows <- row:
		}
	}
	close(rows)
	wg.Wait()
	if err != nil {
		return faceRaster{}, Stats{}, errors.Wrap(err, "rendering face map")
	}

	stats := Stats{Pixels: pixels.Load()}
	for f := range counts {
		stats.FacePixels[f] = counts[f].Load()
	}
	glog.V(1).Infof("Rendered %dx%d face map on EPSG:%d, %d pixels", w, h, cfg.Grid.EPSG(), stats.Pixels)
	return raster, stats, nil
}

// onEdge reports whether the pixel at (x, y) borders another face to its
// right or below.
func onEdge(index []uint8, w, h, x, y int) bool {
	face := index[y*w+x]
	if x+1 < w {
		if n := index[y*w+x+1]; n != noFace && n != face {
			return true
		}
	}
	if y+1 < h {
		if n := index[(y+1)*w+x]; n != noFace && n != face {
			return true
		}
	}
	return false
}
