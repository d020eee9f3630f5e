package mathutil

import "github.com/chewxy/math32"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float32

// QuatIdentity is the rotation that leaves every vector unchanged.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle builds (axis·sin(θ/2), cos(θ/2)). The axis must be unit
// length for the result to be a unit quaternion; it is not re-normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := math32.Sin(angle/2), math32.Cos(angle/2)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

func (q Quat) Len() float32 {
	return math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// QuatToMat4 converts a unit quaternion to a homogeneous rotation matrix.
func QuatToMat4(q Quat) Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat4FromCols(
		Vec4{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		Vec4{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		Vec4{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		Vec4{0, 0, 0, 1},
	)
}
