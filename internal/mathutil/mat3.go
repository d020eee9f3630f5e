package mathutil

// Mat3 is a 3×3 matrix stored column-major. It only exists to take the
// determinants of Mat4 minors.
type Mat3 [9]float32

func Mat3FromCols(a, b, c Vec3) Mat3 {
	return Mat3{a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2]}
}

func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[3]*(m[1]*m[8]-m[2]*m[7]) +
		m[6]*(m[1]*m[5]-m[2]*m[4])
}
