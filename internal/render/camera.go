package render

import (
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/scene"
)

// Camera is a pinhole at Eye looking toward -Z through an image plane at z=0.
// The plane spans one unit vertically; the horizontal extent follows the
// aspect ratio.
type Camera struct {
	Eye    mathutil.Vec3
	Width  int
	Height int
}

// PixelPoint maps continuous pixel coordinates (x right, y down) onto the
// image plane.
func (c Camera) PixelPoint(px, py float32) mathutil.Vec3 {
	h := float32(c.Height)
	return mathutil.Vec3{
		px/h - 0.5*float32(c.Width)/h,
		-(py/h - 0.5),
		0,
	}
}

// Ray returns the primary ray through continuous pixel coordinates.
func (c Camera) Ray(px, py float32) scene.Ray {
	return scene.Ray{
		Origin: c.Eye,
		Dir:    c.PixelPoint(px, py).Sub(c.Eye).Normalize(),
	}
}
