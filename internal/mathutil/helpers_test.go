package mathutil

const epsilon = 1e-5

func almostEqual(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

func vec3Equal(a, b Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}
