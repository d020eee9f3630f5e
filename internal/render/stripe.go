package render

import (
	"math/rand/v2"

	"raycast-renderer/internal/raster"
)

// stripeWorker renders columns [x0, x0+width) of the frame into its own buffer.
type stripeWorker struct {
	scene  raster.Scene
	camera Camera
	light  raster.LightConfig
	x0     int
	width  int
	height int
	rays   int
	rng    *rand.Rand
}

func newStripeWorker(s raster.Scene, opts Options, index int) *stripeWorker {
	rays := opts.Samples
	if rays < 1 {
		rays = 1
	}
	return &stripeWorker{
		scene:  s,
		camera: opts.camera(),
		light:  opts.Light,
		x0:     index * opts.StripeWidth(),
		width:  opts.StripeWidth(),
		height: opts.Height,
		rays:   rays,
		rng:    stripeRand(opts.Seed, index),
	}
}

// stripeRand gives each stripe an independent source. A zero seed draws a
// fresh one, so jitter differs between runs.
func stripeRand(seed uint64, index int) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, uint64(index)))
}

func (w *stripeWorker) run() stripeResult {
	fb := raster.NewFrameBuffer(w.width, w.height)
	var st Stats
	for x := 0; x < w.width; x++ {
		for y := 0; y < w.height; y++ {
			var sum raster.Radiance
			for k := 0; k < w.rays; k++ {
				dx, dy := w.jitter()
				ray := w.camera.Ray(float32(w.x0+x)+dx, float32(y)+dy)
				rad, hit := raster.Shade(w.scene, ray, &w.light)
				if hit {
					st.HitRays++
				}
				sum = sum.Add(rad)
			}
			st.Rays += int64(w.rays)
			if sum != (raster.Radiance{}) {
				fb.Set(x, y, sum.Div(float32(w.rays)).Quantize())
			}
		}
	}
	st.Pixels = int64(w.width * w.height)
	return stripeResult{fb: fb, stats: st}
}

// jitter returns the sample offset inside the pixel footprint: the centre
// for single-sample renders, uniform random otherwise.
func (w *stripeWorker) jitter() (float32, float32) {
	if w.rays == 1 {
		return 0.5, 0.5
	}
	return w.rng.Float32(), w.rng.Float32()
}
