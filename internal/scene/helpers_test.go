package scene

import (
	"testing"

	"raycast-renderer/internal/mathutil"
)

const epsilon = 1e-4

func almostEqual(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

func vec3Equal(a, b mathutil.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

var (
	red   = Simple{Color: RGB{255, 0, 0}}
	green = Simple{Color: RGB{0, 255, 0}}
)

func mustShape(t *testing.T, mat Material, tr Transform, g Geometry) *Shape {
	t.Helper()
	s, err := NewShape(mat, tr, g)
	if err != nil {
		t.Fatalf("NewShape(%s): %v", g.Kind(), err)
	}
	return s
}
