package render

import (
	"errors"
	"fmt"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/raster"
)

var (
	// ErrInvalidSize is returned for non-positive image dimensions or thread counts.
	ErrInvalidSize = errors.New("render: invalid image size")
	// ErrStripeWidth is returned when the width is not a multiple of the thread count.
	ErrStripeWidth = errors.New("render: width must be divisible by thread count")
	// ErrZeroLight is returned when the light direction has no length.
	ErrZeroLight = errors.New("render: light direction is zero")
)

// Logger receives progress lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Options is the immutable configuration of one render.
type Options struct {
	Width   int
	Height  int
	Threads int // number of vertical stripes, one worker each
	Samples int // rays per pixel; <= 1 casts one ray through the pixel centre

	Eye   mathutil.Vec3
	Light raster.LightConfig

	// Seed makes jitter reproducible when non-zero.
	Seed uint64

	// Logger, when set, receives periodic progress lines.
	Logger Logger
}

// DefaultOptions returns a 1280×720 render on 16 stripes with 16 samples.
func DefaultOptions() Options {
	return Options{
		Width:   1280,
		Height:  720,
		Threads: 16,
		Samples: 16,
		Eye:     mathutil.Vec3{0, 0, 1},
		Light:   raster.DefaultLightConfig(),
	}
}

// Validate reports configuration errors that must stop a render before it starts.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.Threads <= 0 {
		return fmt.Errorf("%w: %d threads", ErrInvalidSize, o.Threads)
	}
	if o.Width%o.Threads != 0 {
		return fmt.Errorf("%w: width %d, threads %d", ErrStripeWidth, o.Width, o.Threads)
	}
	if o.Light.ToLight == (mathutil.Vec3{}) {
		return ErrZeroLight
	}
	return nil
}

// StripeWidth is the number of columns each worker renders.
func (o Options) StripeWidth() int {
	return o.Width / o.Threads
}

func (o Options) camera() Camera {
	return Camera{Eye: o.Eye, Width: o.Width, Height: o.Height}
}
