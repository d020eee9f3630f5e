package mathutil

import "errors"

// ErrSingular is returned when inverting a matrix whose determinant is exactly zero.
var ErrSingular = errors.New("mathutil: matrix has no inverse")

// Mat4 is a 4×4 homogeneous transform stored column-major:
// element (row r, column c) lives at index c*4+r.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{
		c0[0], c0[1], c0[2], c0[3],
		c1[0], c1[1], c1[2], c1[3],
		c2[0], c2[1], c2[2], c2[3],
		c3[0], c3[1], c3[2], c3[3],
	}
}

// Mat4Translation returns the matrix that moves points by v.
func Mat4Translation(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = v[0], v[1], v[2]
	return m
}

// Mat4Scale returns the matrix that scales each axis by the matching component of v.
func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = v[0], v[1], v[2]
	return m
}

func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

func (m Mat4) Col(c int) Vec4 {
	return Vec4{m[c*4], m[c*4+1], m[c*4+2], m[c*4+3]}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[0*4+r]*b[c*4+0] + a[1*4+r]*b[c*4+1] +
				a[2*4+r]*b[c*4+2] + a[3*4+r]*b[c*4+3]
		}
	}
	return m
}

// MulVec4 returns M × v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(v.Extend(1)).XYZ()
}

// MulDir transforms a direction (w=0), ignoring translation.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.MulVec4(v.Extend(0)).XYZ()
}

func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// minor returns the 3×3 matrix left after deleting row and col.
func (m Mat4) minor(row, col int) Mat3 {
	var cols [3]Vec3
	k := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		cols[k] = m.Col(c).Truncate(row)
		k++
	}
	return Mat3FromCols(cols[0], cols[1], cols[2])
}

func (m Mat4) cofactor(row, col int) float32 {
	d := m.minor(row, col).Det()
	if (row+col)%2 == 1 {
		return -d
	}
	return d
}

// Det expands along the first row.
func (m Mat4) Det() float32 {
	var d float32
	for c := 0; c < 4; c++ {
		d += m.At(0, c) * m.cofactor(0, c)
	}
	return d
}

// Inverse computes adj(M)/det(M). It fails with ErrSingular only when the
// determinant is exactly zero.
func (m Mat4) Inverse() (Mat4, error) {
	d := m.Det()
	if d == 0 {
		return Mat4{}, ErrSingular
	}
	invD := 1 / d
	var inv Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// adjugate is the transposed cofactor matrix
			inv[r*4+c] = m.cofactor(r, c) * invD
		}
	}
	return inv, nil
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Mat4Identity(), 1e-6)
}

// ApproxEqual reports whether every element of m is within eps of n.
func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for i := range m {
		d := m[i] - n[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
