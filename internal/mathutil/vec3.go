package mathutil

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float32

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Mul multiplies component-wise.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	inv := 1 / l
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Angle returns the angle between a and b in radians.
func (a Vec3) Angle(b Vec3) float32 {
	return math32.Acos(clampUnit(a.Dot(b) / a.Len() / b.Len()))
}

// Extend returns the homogeneous form of v with weight w.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// clampUnit keeps rounding error from pushing a cosine outside [-1, 1],
// where Acos would return NaN. NaN input is passed through.
func clampUnit(c float32) float32 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}
