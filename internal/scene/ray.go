package scene

import "raycast-renderer/internal/mathutil"

// Ray is a half-line from Origin along Dir. Dir need not be unit length.
type Ray struct {
	Origin mathutil.Vec3
	Dir    mathutil.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) mathutil.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Intersection describes the nearest surface hit along a ray.
type Intersection struct {
	T        float32 // ray parameter, >= 0
	Pos      mathutil.Vec3
	Normal   mathutil.Vec3 // unit length in world space
	Material Material

	// LocalFrame is the product of every transform from the root down to
	// the hit shape. localInv is its inverse, accumulated alongside it.
	LocalFrame mathutil.Mat4
	localInv   mathutil.Mat4
}

func newLocalHit(t float32, pos, normal mathutil.Vec3, mat Material) Intersection {
	return Intersection{
		T:          t,
		Pos:        pos,
		Normal:     normal,
		Material:   mat,
		LocalFrame: mathutil.Mat4Identity(),
		localInv:   mathutil.Mat4Identity(),
	}
}

// FramePoint maps a world position into the hit shape's accumulated local frame.
func (h Intersection) FramePoint(p mathutil.Vec3) mathutil.Vec3 {
	return h.localInv.MulPoint(p)
}

// nearer folds candidate into the running nearest hit. Ties keep the current hit.
func nearer(cur Intersection, curOK bool, cand Intersection, candOK bool) (Intersection, bool) {
	if !candOK {
		return cur, curOK
	}
	if !curOK || cand.T < cur.T {
		return cand, true
	}
	return cur, true
}
