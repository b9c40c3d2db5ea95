package progress

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "0s", formatDuration(0))
	require.Equal(t, "45s", formatDuration(45500*time.Millisecond))
	require.Equal(t, "1m23s", formatDuration(83*time.Second))
	require.Equal(t, "61m05s", formatDuration(time.Hour+65*time.Second))
}

func TestBar_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	pb := New(&buf, "check", "samples", 4000)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				pb.Increment()
			}
		}()
	}
	wg.Wait()
	pb.Finish()

	require.Equal(t, int64(4000), pb.Processed())
	require.Contains(t, buf.String(), "4,000/4,000 samples")
	require.Contains(t, buf.String(), "100%")
}

func TestBar_NilWriter(t *testing.T) {
	pb := New(nil, "check", "samples", 3)
	pb.Increment()
	pb.Increment()
	pb.Finish()
	pb.Finish()
	require.Equal(t, int64(2), pb.Processed())
}
