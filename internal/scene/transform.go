package scene

import (
	"errors"
	"fmt"

	"raycast-renderer/internal/mathutil"
)

// ErrDegenerateTransform is returned for transforms whose matrix cannot be inverted.
var ErrDegenerateTransform = errors.New("scene: degenerate transform")

// Transform places a shape: scale first, then rotation, then translation.
type Transform struct {
	Translation mathutil.Vec3
	Rotation    mathutil.Quat // unit quaternion
	Scale       mathutil.Vec3
}

// Identity returns the transform that leaves a shape where its geometry defines it.
func Identity() Transform {
	return Transform{
		Rotation: mathutil.QuatIdentity(),
		Scale:    mathutil.Vec3{1, 1, 1},
	}
}

func FromT(t mathutil.Vec3) Transform {
	x := Identity()
	x.Translation = t
	return x
}

func FromTR(t mathutil.Vec3, r mathutil.Quat) Transform {
	x := FromT(t)
	x.Rotation = r
	return x
}

func FromTRS(t mathutil.Vec3, r mathutil.Quat, s mathutil.Vec3) Transform {
	return Transform{Translation: t, Rotation: r, Scale: s}
}

// Matrix returns T·R·S.
func (t Transform) Matrix() mathutil.Mat4 {
	return mathutil.Mat4Mul(
		mathutil.Mat4Mul(mathutil.Mat4Translation(t.Translation), mathutil.QuatToMat4(t.Rotation)),
		mathutil.Mat4Scale(t.Scale),
	)
}

// Affine resolves the transform into the matrices used while tracing.
// A singular matrix (e.g. zero scale on an axis) is an error.
func (t Transform) Affine() (Affine, error) {
	m := t.Matrix()
	inv, err := m.Inverse()
	if err != nil {
		return Affine{}, fmt.Errorf("%w: scale %v: %w", ErrDegenerateTransform, t.Scale, err)
	}
	return Affine{M: m, Inv: inv, NormalM: inv.Transpose()}, nil
}

// Affine holds a transform matrix with its inverse and inverse-transpose.
type Affine struct {
	M       mathutil.Mat4
	Inv     mathutil.Mat4
	NormalM mathutil.Mat4
}

// ToLocal maps a world-space ray into local space. The origin is a point
// and picks up the inverse translation; the direction does not.
func (a Affine) ToLocal(r Ray) Ray {
	return Ray{
		Origin: a.Inv.MulPoint(r.Origin),
		Dir:    a.Inv.MulDir(r.Dir),
	}
}

// ToWorld maps a hit computed in local space back to the parent space.
// T is unchanged because ToLocal keeps the ray parameterisation.
func (a Affine) ToWorld(h Intersection) Intersection {
	return Intersection{
		T:          h.T,
		Pos:        a.M.MulPoint(h.Pos),
		Normal:     a.NormalM.MulDir(h.Normal).Normalize(),
		Material:   h.Material,
		LocalFrame: mathutil.Mat4Mul(a.M, h.LocalFrame),
		localInv:   mathutil.Mat4Mul(h.localInv, a.Inv),
	}
}
