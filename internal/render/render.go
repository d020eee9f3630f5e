package render

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/scene"
)

// Render traces root into a Width×Height frame. Columns are split into
// Threads stripes of equal width, each rendered by its own goroutine into a
// private buffer; the stripes are copied into the frame after all workers
// finish. The scene is only read.
//
// Configuration errors and malformed scenes are reported before any worker
// starts. Once started, a render runs to completion.
func Render(ctx context.Context, root *scene.Shape, opts Options) (*raster.FrameBuffer, Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if err := scene.Validate(root); err != nil {
		return nil, Stats{}, fmt.Errorf("render: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}
	return renderStripes(root, opts)
}

type stripeResult struct {
	fb    *raster.FrameBuffer
	stats Stats
}

func renderStripes(s raster.Scene, opts Options) (*raster.FrameBuffer, Stats, error) {
	start := time.Now()
	n := opts.Threads
	results := make([]stripeResult, n)
	var finished atomic.Int64

	// Progress reporter
	done := make(chan struct{})
	if opts.Logger != nil {
		go reportProgress(opts.Logger, &finished, n, start, done)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := newStripeWorker(s, opts, i)
			results[i] = w.run()
			finished.Add(1)
		}(i)
	}
	wg.Wait()
	close(done)

	frame := raster.NewFrameBuffer(opts.Width, opts.Height)
	stats := Stats{Stripes: n}
	for i, r := range results {
		if err := frame.Blit(r.fb, i*opts.StripeWidth()); err != nil {
			return nil, Stats{}, err
		}
		stats.add(r.stats)
	}
	stats.finalize(time.Since(start))
	return frame, stats, nil
}

func reportProgress(log Logger, finished *atomic.Int64, total int, start time.Time, done <-chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			log.Printf("  [%d/%d] stripes, %.1fs elapsed", finished.Load(), total, time.Since(start).Seconds())
		}
	}
}
