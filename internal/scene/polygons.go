package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"raycast-renderer/internal/mathutil"
)

// Corner references one triangle vertex: a position index and a normal
// index, both 0-based.
type Corner struct {
	Point  int
	Normal int
}

// Face is a triangle.
type Face [3]Corner

// Object is a triangle mesh as produced by a mesh loader.
type Object struct {
	Points  []mathutil.Vec3
	Normals []mathutil.Vec3
	Faces   []Face
}

// Bounds returns the axis-aligned box around all points. An empty object
// yields min = +Inf and max = -Inf.
func (o *Object) Bounds() (min, max mathutil.Vec3) {
	min = mathutil.Vec3{posInf, posInf, posInf}
	max = mathutil.Vec3{negInf, negInf, negInf}
	for _, p := range o.Points {
		for k := 0; k < 3; k++ {
			min[k] = math32.Min(min[k], p[k])
			max[k] = math32.Max(max[k], p[k])
		}
	}
	return min, max
}

// triangle is a face resolved against the object's arrays, with its edges
// and unnormalized face normal precomputed.
type triangle struct {
	p       [3]mathutil.Vec3
	n       [3]mathutil.Vec3
	e1, e2  mathutil.Vec3
	normal  mathutil.Vec3
	normal2 float32 // |normal|², zero for degenerate faces
}

// Polygons is a triangle mesh in local space.
type Polygons struct {
	obj  Object
	tris []triangle
}

// NewPolygons resolves every face of obj. Out-of-range indices are
// rejected here instead of being read during tracing.
func NewPolygons(obj Object) (*Polygons, error) {
	tris := make([]triangle, 0, len(obj.Faces))
	for fi, f := range obj.Faces {
		var tri triangle
		for k, c := range f {
			if c.Point < 0 || c.Point >= len(obj.Points) {
				return nil, fmt.Errorf("scene: face %d: point index %d out of range [0,%d)", fi, c.Point, len(obj.Points))
			}
			if c.Normal < 0 || c.Normal >= len(obj.Normals) {
				return nil, fmt.Errorf("scene: face %d: normal index %d out of range [0,%d)", fi, c.Normal, len(obj.Normals))
			}
			tri.p[k] = obj.Points[c.Point]
			tri.n[k] = obj.Normals[c.Normal]
		}
		tri.e1 = tri.p[1].Sub(tri.p[0])
		tri.e2 = tri.p[2].Sub(tri.p[0])
		tri.normal = tri.e1.Cross(tri.e2)
		tri.normal2 = tri.normal.Dot(tri.normal)
		tris = append(tris, tri)
	}
	return &Polygons{obj: obj, tris: tris}, nil
}

func (*Polygons) Kind() string { return "polygons" }

// Object returns the mesh the polygons were built from.
func (g *Polygons) Object() Object { return g.obj }

// Len returns the number of triangles.
func (g *Polygons) Len() int { return len(g.tris) }

func (g *Polygons) intersectLocal(r Ray, mat Material) (Intersection, bool) {
	var best Intersection
	var found bool
	for i := range g.tris {
		h, ok := g.tris[i].intersect(r, mat)
		best, found = nearer(best, found, h, ok)
	}
	return best, found
}

func (tri *triangle) intersect(r Ray, mat Material) (Intersection, bool) {
	if tri.normal2 == 0 {
		return Intersection{}, false
	}
	denom := tri.normal.Dot(r.Dir)
	if denom == 0 {
		return Intersection{}, false
	}
	t := tri.normal.Dot(tri.p[0].Sub(r.Origin)) / denom
	if t < 0 {
		return Intersection{}, false
	}
	p := r.At(t)

	// Same-side tests. w[k] is the signed area of the sub-triangle opposite
	// vertex k, relative to the whole face.
	var w [3]float32
	for k := 0; k < 3; k++ {
		a, b := tri.p[(k+1)%3], tri.p[(k+2)%3]
		s := b.Sub(a).Cross(p.Sub(a)).Dot(tri.normal)
		if s < 0 {
			return Intersection{}, false
		}
		w[k] = s / tri.normal2
	}

	n := tri.n[0].Scale(w[0]).Add(tri.n[1].Scale(w[1])).Add(tri.n[2].Scale(w[2])).Normalize()
	if denom > 0 {
		// ray arrives from behind the winding; face the normal toward it
		n = n.Neg()
	}
	return newLocalHit(t, p, n, mat), true
}
