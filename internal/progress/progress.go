// Package progress draws terminal progress bars for worker pools.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// Bar renders an in-place terminal progress bar. It refreshes at a
// fixed interval and supports concurrent Increment calls from multiple
// worker goroutines.
type Bar struct {
	total     int64
	processed atomic.Int64
	label     string
	unit      string
	barWidth  int
	start     time.Time
	out       io.Writer
	done      chan struct{}
	stopped   chan struct{}
	finished  sync.Once
	mu        sync.Mutex
}

// New starts a progress bar drawing to out. A nil out disables
// drawing but still counts.
func New(out io.Writer, label, unit string, total int64) *Bar {
	pb := &Bar{
		total:    total,
		label:    label,
		unit:     unit,
		barWidth: 30,
		start:    time.Now(),
		out:      out,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	if out != nil {
		go pb.run()
	} else {
		close(pb.stopped)
	}
	return pb
}

// Increment marks one more item as processed. Safe for concurrent use.
func (pb *Bar) Increment() {
	pb.processed.Add(1)
}

// Processed returns the number of items counted so far.
func (pb *Bar) Processed() int64 {
	return pb.processed.Load()
}

// Finish stops the refresh loop and prints the final bar state with a newline.
func (pb *Bar) Finish() {
	pb.finished.Do(func() {
		close(pb.done)
		<-pb.stopped
		if pb.out != nil {
			pb.draw()
			fmt.Fprint(pb.out, "\n")
		}
	})
}

func (pb *Bar) run() {
	defer close(pb.stopped)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-pb.done:
			return
		case <-ticker.C:
			pb.draw()
		}
	}
}

func (pb *Bar) draw() {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	processed := pb.processed.Load()
	total := pb.total

	var frac float64
	if total > 0 {
		frac = float64(processed) / float64(total)
	}
	frac = min(frac, 1)

	filled := int(float64(pb.barWidth) * frac)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", pb.barWidth-filled)

	elapsed := time.Since(pb.start)
	rate := float64(0)
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(processed) / secs
	}

	fmt.Fprintf(pb.out, "\r%s [%s] %3.0f%%  %s/%s %s  %s/s  %s\033[K",
		pb.label, bar, frac*100, humanize.Comma(processed), humanize.Comma(total),
		pb.unit, humanize.Comma(int64(rate)), formatDuration(elapsed))
}

// formatDuration formats a duration concisely (e.g. "1m23s", "45s", "0s").
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) - m*60
	return fmt.Sprintf("%dm%02ds", m, s)
}
