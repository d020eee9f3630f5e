package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"raycast-renderer/internal/mathutil"
)

// Geometry is the closed set of primitives a Shape can own: Sphere, Cube,
// InfinitePlane, *Polygons and Composite.
type Geometry interface {
	// intersectLocal solves for the nearest hit of a local-space ray.
	intersectLocal(r Ray, mat Material) (Intersection, bool)
	Kind() string
}

// Shape is a scene graph node. It is immutable after construction and safe
// for concurrent Intersect calls.
type Shape struct {
	material  Material
	transform Transform
	affine    Affine
	geometry  Geometry
}

// NewShape builds a node. It fails if the transform is singular or the
// geometry is missing.
func NewShape(mat Material, t Transform, g Geometry) (*Shape, error) {
	if g == nil {
		return nil, errors.New("scene: shape without geometry")
	}
	if mat == nil {
		mat = Simple{}
	}
	a, err := t.Affine()
	if err != nil {
		return nil, fmt.Errorf("scene: %s shape: %w", g.Kind(), err)
	}
	return &Shape{material: mat, transform: t, affine: a, geometry: g}, nil
}

// Intersect returns the nearest hit in this shape's subtree, in the space of
// the shape's parent (world space at the root).
func (s *Shape) Intersect(r Ray) (Intersection, bool) {
	h, ok := s.geometry.intersectLocal(s.affine.ToLocal(r), s.material)
	if !ok {
		return Intersection{}, false
	}
	return s.affine.ToWorld(h), true
}

func (s *Shape) Material() Material   { return s.material }
func (s *Shape) Transform() Transform { return s.transform }
func (s *Shape) Geometry() Geometry   { return s.geometry }

// Walk visits s and its descendants depth-first until fn returns false.
func (s *Shape) Walk(fn func(*Shape) bool) bool {
	if !fn(s) {
		return false
	}
	if c, ok := s.geometry.(Composite); ok {
		for _, child := range c.Children {
			if !child.Walk(fn) {
				return false
			}
		}
	}
	return true
}

// Sphere of Radius centred on the local origin.
type Sphere struct {
	Radius float32
}

func (Sphere) Kind() string { return "sphere" }

func (g Sphere) intersectLocal(r Ray, mat Material) (Intersection, bool) {
	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Dir.Dot(r.Origin)
	c := r.Origin.Dot(r.Origin) - g.Radius*g.Radius

	var t0 float32
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return Intersection{}, false
	case d == 0:
		t0 = -0.5 * b / a
	default:
		// q avoids cancellation when b and the root have the same sign
		var q float32
		if b > 0 {
			q = -0.5 * (b + sqrt(d))
		} else {
			q = -0.5 * (b - sqrt(d))
		}
		t0 = q / a
		t1 := c / q
		if t0 > t1 {
			t0 = t1
		}
	}
	if !(t0 >= 0) {
		return Intersection{}, false
	}
	p := r.At(t0)
	return newLocalHit(t0, p, p.Normalize(), mat), true
}

// Cube is an axis-aligned box centred on the local origin with edge lengths Size.
type Cube struct {
	Size mathutil.Vec3
}

func (Cube) Kind() string { return "cube" }

// cubeFaceThreshold is how close to 1 a coordinate normalized by the
// half-extent must be to count as lying on a face.
const cubeFaceThreshold = 0.99999

func (g Cube) intersectLocal(r Ray, mat Material) (Intersection, bool) {
	tmin, tmax := negInf, posInf
	for i := 0; i < 3; i++ {
		t1 := (-g.Size[i]*0.5 - r.Origin[i]) / r.Dir[i]
		t2 := (g.Size[i]*0.5 - r.Origin[i]) / r.Dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}
	if tmax < 0 || tmin > tmax {
		return Intersection{}, false
	}
	// origin inside the box: the visible surface is the exit point
	t := tmin
	if t < 0 {
		t = tmax
	}
	if !(t >= 0) || math32.IsInf(t, 1) {
		return Intersection{}, false
	}

	p := r.At(t)
	var n mathutil.Vec3
	for i := 0; i < 3; i++ {
		v := p[i] / g.Size[i] * 2
		switch {
		case v >= cubeFaceThreshold:
			n[i] = 1
		case v <= -cubeFaceThreshold:
			n[i] = -1
		}
	}
	return newLocalHit(t, p, n.Normalize(), mat), true
}

// InfinitePlane is the local plane y = 0.
type InfinitePlane struct{}

func (InfinitePlane) Kind() string { return "plane" }

func (InfinitePlane) intersectLocal(r Ray, mat Material) (Intersection, bool) {
	if r.Dir[1] == 0 {
		return Intersection{}, false
	}
	t := r.Origin[1] / -r.Dir[1]
	if !(t >= 0) {
		return Intersection{}, false
	}
	n := mathutil.Vec3{0, -1, 0}
	if r.Origin[1] > 0 {
		n[1] = 1
	}
	p := r.At(t)
	p[1] = 0
	return newLocalHit(t, p, n, mat), true
}

// Composite groups child shapes under one transform. Its own material is
// never reported; hits carry the material of the child that was struck.
type Composite struct {
	Children []*Shape
}

func (Composite) Kind() string { return "composite" }

func (g Composite) intersectLocal(r Ray, _ Material) (Intersection, bool) {
	var best Intersection
	var found bool
	for _, child := range g.Children {
		h, ok := child.Intersect(r)
		best, found = nearer(best, found, h, ok)
	}
	return best, found
}
