package scene

import (
	"github.com/chewxy/math32"

	"raycast-renderer/internal/mathutil"
)

// RGB is an 8-bit-per-channel color.
type RGB [3]uint8

// Material is either Simple or Checkerboard. Both are plain values and are
// copied into every Intersection they produce.
type Material interface {
	// ColorAt returns the surface color at p, given in the hit's local frame.
	ColorAt(p mathutil.Vec3) RGB
	// Patterned reports whether ColorAt depends on p.
	Patterned() bool
}

// Simple is a flat color.
type Simple struct {
	Color RGB
}

func (m Simple) ColorAt(mathutil.Vec3) RGB { return m.Color }
func (Simple) Patterned() bool              { return false }

// Checkerboard alternates Color1 and Color2 in cubes of edge Scale centred on
// the integer lattice of the local frame.
type Checkerboard struct {
	Color1 RGB
	Color2 RGB
	Scale  float32
}

func (m Checkerboard) ColorAt(p mathutil.Vec3) RGB {
	sum := roundInt(p[0]/m.Scale) + roundInt(p[1]/m.Scale) + roundInt(p[2]/m.Scale)
	if sum%2 == 0 {
		return m.Color1
	}
	return m.Color2
}

func (Checkerboard) Patterned() bool { return true }

// roundInt rounds half away from zero.
func roundInt(v float32) int {
	if v < 0 {
		return -int(math32.Floor(-v + 0.5))
	}
	return int(math32.Floor(v + 0.5))
}
