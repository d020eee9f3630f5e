package raster

import (
	"fmt"

	"raycast-renderer/internal/scene"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// Pixels are RGB interleaved, row-major, len = W*H*3. Unwritten pixels stay black.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrameBuffer allocates a zeroed (black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
}

func (fb *FrameBuffer) offset(x, y int) int {
	return (y*fb.Width + x) * 3
}

func (fb *FrameBuffer) Set(x, y int, c scene.RGB) {
	i := fb.offset(x, y)
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = c[0], c[1], c[2]
}

func (fb *FrameBuffer) At(x, y int) scene.RGB {
	i := fb.offset(x, y)
	return scene.RGB{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]}
}

// Blit copies src into fb with its left edge at column x0. src must have
// the same height and fit horizontally.
func (fb *FrameBuffer) Blit(src *FrameBuffer, x0 int) error {
	if src.Height != fb.Height || x0 < 0 || x0+src.Width > fb.Width {
		return fmt.Errorf("raster: blit %dx%d at x=%d into %dx%d", src.Width, src.Height, x0, fb.Width, fb.Height)
	}
	rowLen := src.Width * 3
	for y := 0; y < src.Height; y++ {
		copy(fb.Pix[fb.offset(x0, y):], src.Pix[y*rowLen:(y+1)*rowLen])
	}
	return nil
}
