package mathutil

import "math"

// Unit axes.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// RotX returns a rotation of a radians around the X axis.
func RotX(a float32) Quat {
	return QuatFromAxisAngle(AxisX, a)
}

// RotY returns a rotation of a radians around the Y axis.
func RotY(a float32) Quat {
	return QuatFromAxisAngle(AxisY, a)
}

// RotZ returns a rotation of a radians around the Z axis.
func RotZ(a float32) Quat {
	return QuatFromAxisAngle(AxisZ, a)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math.Pi / 180
}
