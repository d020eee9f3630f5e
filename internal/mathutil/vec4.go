package mathutil

import "github.com/chewxy/math32"

// Vec4 is a homogeneous 4-component vector. Matrix columns are stored as Vec4.
type Vec4 [4]float32

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (a Vec4) Dot(b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (a Vec4) Angle(b Vec4) float32 {
	return math32.Acos(clampUnit(a.Dot(b) / a.Len() / b.Len()))
}

// Truncate drops component i and returns the remaining three in order.
func (v Vec4) Truncate(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{v[1], v[2], v[3]}
	case 1:
		return Vec3{v[0], v[2], v[3]}
	case 2:
		return Vec3{v[0], v[1], v[3]}
	case 3:
		return Vec3{v[0], v[1], v[2]}
	}
	panic("mathutil: Vec4.Truncate index out of range")
}

// XYZ drops the homogeneous weight without dividing by it.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
