// Package check measures the round-trip accuracy of an ISEA projection on
// random points of the sphere.
package check

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"runtime"
	"strings"
	"sync"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/isea"
	"github.com/pspoerri/isea/internal/progress"
)

// ErrToleranceExceeded is returned by Report.Err when a sample failed.
var ErrToleranceExceeded = errors.New("round-trip tolerance exceeded")

const (
	// DefaultTolerance is the accepted round-trip error in degrees.
	DefaultTolerance = 1e-6

	// chunkSize is the number of samples drawn from one random stream.
	chunkSize = 1024

	// Errors are recorded in nano-degrees.
	nanoDegrees   = 1e9
	maxErrorValue = 360 * nanoDegrees
	maxIterations = 1000
	sigFigs       = 3
)

// Config holds round-trip check configuration.
type Config struct {
	Samples     int
	Concurrency int     // defaults to GOMAXPROCS
	Seed        uint64  // seeds the sample streams
	Tolerance   float64 // degrees; defaults to DefaultTolerance
	Progress    io.Writer
}

// Report summarises a round-trip check.
type Report struct {
	Samples   int64
	Failures  int64 // samples beyond the tolerance
	Errors    int64 // samples the inverse could not solve
	Tolerance float64

	MaxError  float64             // degrees
	Worst     coord.GeoCoordinate // sample with MaxError
	FirstErr  error               // first inverse error
	ErrorHist *hdrhistogram.Histogram
	IterHist  *hdrhistogram.Histogram
}

func newReport(tolerance float64) *Report {
	return &Report{
		Tolerance: tolerance,
		ErrorHist: hdrhistogram.New(1, maxErrorValue, sigFigs),
		IterHist:  hdrhistogram.New(1, maxIterations, sigFigs),
	}
}

// RandomPoint draws a point uniformly by area.
func RandomPoint(r *rand.Rand) coord.GeoCoordinate {
	return coord.GeoCoordinate{
		Lat: math.Asin(2*r.Float64()-1) * 180 / math.Pi,
		Lon: 360*r.Float64() - 180,
	}
}

// add projects c, inverts the result and records the error.
func (r *Report) add(p *isea.Projection, c coord.GeoCoordinate) {
	r.Samples++
	fc := p.SphereToIcosahedron(c)
	back, n, err := p.IcosahedronToSphereIterations(fc)
	if err != nil {
		r.Errors++
		if r.FirstErr == nil {
			r.FirstErr = errors.Wrapf(err, "inverse of %v", c)
		}
		return
	}
	_ = r.IterHist.RecordValue(int64(n))

	d := coord.AngularDistance(c, back)
	if math.IsNaN(d) {
		r.Failures++
		return
	}
	if r.ErrorHist.RecordValue(int64(math.Round(d*nanoDegrees))) != nil {
		_ = r.ErrorHist.RecordValue(maxErrorValue)
	}
	if r.Samples == 1 || d > r.MaxError {
		r.MaxError, r.Worst = d, c
	}
	if d > r.Tolerance {
		r.Failures++
	}
}

func (r *Report) merge(o *Report) {
	if o.Samples == 0 {
		return
	}
	if r.Samples == 0 || o.MaxError > r.MaxError {
		r.MaxError, r.Worst = o.MaxError, o.Worst
	}
	r.Samples += o.Samples
	r.Failures += o.Failures
	r.Errors += o.Errors
	if r.FirstErr == nil {
		r.FirstErr = o.FirstErr
	}
	r.ErrorHist.Merge(o.ErrorHist)
	r.IterHist.Merge(o.IterHist)
}

// Run projects and inverts cfg.Samples random points and collects the
// round-trip error. The samples depend only on the seed, not on the
// concurrency.
func Run(ctx context.Context, p *isea.Projection, cfg Config) (*Report, error) {
	if cfg.Samples <= 0 {
		return nil, errors.Errorf("invalid sample count %d", cfg.Samples)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}

	chunks := (cfg.Samples + chunkSize - 1) / chunkSize
	pb := progress.New(cfg.Progress, "check", "chunks", int64(chunks))
	defer pb.Finish()

	jobs := make(chan int, cfg.Concurrency*2)
	partials := make([]*Report, cfg.Concurrency)
	var wg sync.WaitGroup

	for w := range partials {
		partial := newReport(cfg.Tolerance)
		partials[w] = partial
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunk := range jobs {
				rng := rand.New(rand.NewPCG(cfg.Seed, uint64(chunk)))
				n := min(chunkSize, cfg.Samples-chunk*chunkSize)
				for range n {
					partial.add(p, RandomPoint(rng))
				}
				pb.Increment()
			}
		}()
	}

	var err error
	for chunk := 0; chunk < chunks; chunk++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case jobs <- chunk:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, errors.Wrap(err, "round-trip check")
	}

	report := newReport(cfg.Tolerance)
	for _, partial := range partials {
		report.merge(partial)
	}
	glog.V(1).Infof("Checked %d samples with %d workers, max error %g degrees",
		report.Samples, cfg.Concurrency, report.MaxError)
	return report, nil
}

// Err returns ErrToleranceExceeded if any sample failed.
func (r *Report) Err() error {
	if r.Errors > 0 {
		return errors.Wrapf(ErrToleranceExceeded, "%d of %d samples not invertible: %v",
			r.Errors, r.Samples, r.FirstErr)
	}
	if r.Failures > 0 {
		return errors.Wrapf(ErrToleranceExceeded, "%d of %d samples beyond %g degrees, worst %g at %v",
			r.Failures, r.Samples, r.Tolerance, r.MaxError, r.Worst)
	}
	return nil
}

// ErrorQuantile returns the round-trip error at quantile q (0-100) in degrees.
func (r *Report) ErrorQuantile(q float64) float64 {
	return float64(r.ErrorHist.ValueAtQuantile(q)) / nanoDegrees
}

// IterationCounts returns how many samples took each number of Newton
// iterations.
func (r *Report) IterationCounts() map[int]int64 {
	counts := make(map[int]int64)
	for _, bar := range r.IterHist.Distribution() {
		if bar.Count > 0 {
			counts[int(bar.From)] += bar.Count
		}
	}
	return counts
}

// String returns a human readable summary.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "samples     %s (failures %s, errors %s)\n",
		humanize.Comma(r.Samples), humanize.Comma(r.Failures), humanize.Comma(r.Errors))
	fmt.Fprintf(&b, "tolerance   %g deg\n", r.Tolerance)
	fmt.Fprintf(&b, "max error   %.3e deg at %v\n", r.MaxError, r.Worst)
	fmt.Fprintf(&b, "error       p50 %.3e  p99 %.3e  p99.9 %.3e deg\n",
		r.ErrorQuantile(50), r.ErrorQuantile(99), r.ErrorQuantile(99.9))
	fmt.Fprintf(&b, "iterations  mean %.2f  max %d\n", r.IterHist.Mean(), r.IterHist.Max())
	counts := r.IterationCounts()
	for n := 0; n <= int(r.IterHist.Max()); n++ {
		if c, ok := counts[n]; ok {
			fmt.Fprintf(&b, "  %3d  %s\n", n, humanize.Comma(c))
		}
	}
	return b.String()
}
