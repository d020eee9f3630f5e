package render

import "time"

// Stats summarises a finished render.
type Stats struct {
	Pixels    int64         `json:"pixels"`
	Rays      int64         `json:"primary_rays"`
	HitRays   int64         `json:"hit_rays"`
	Stripes   int           `json:"stripes"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	RaysPerMs float64       `json:"rays_per_ms"`
}

func (s *Stats) add(o Stats) {
	s.Pixels += o.Pixels
	s.Rays += o.Rays
	s.HitRays += o.HitRays
}

func (s *Stats) finalize(elapsed time.Duration) {
	s.Elapsed = elapsed
	if ms := elapsed.Seconds() * 1000; ms > 0 {
		s.RaysPerMs = float64(s.Rays) / ms
	}
}
