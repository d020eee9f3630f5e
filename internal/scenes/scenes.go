// Package scenes builds the named preset scenes the renderer ships with.
package scenes

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/objfile"
	"raycast-renderer/internal/scene"
)

// ErrUnknownScene is returned by Build for a name with no preset.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// Options locate external assets used by some presets.
type Options struct {
	ModelDir string // directory holding <name>.obj files; default resources/models
	Charset  string // passed to objfile
}

func (o Options) modelPath(name string) string {
	dir := o.ModelDir
	if dir == "" {
		dir = filepath.Join("resources", "models")
	}
	return filepath.Join(dir, name+".obj")
}

type builder func(Options) (*scene.Shape, error)

var presets = map[string]builder{
	"default": buildDefault,
	"teapot":  buildTeapot,
	"spheres": buildSpheres,
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build constructs the preset called name.
func Build(name string, opts Options) (*scene.Shape, error) {
	b, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	root, err := b(opts)
	if err != nil {
		return nil, fmt.Errorf("scenes: build %s: %w", name, err)
	}
	return root, nil
}

var (
	black   = scene.Simple{}
	red     = scene.Simple{Color: scene.RGB{255, 0, 0}}
	green   = scene.Simple{Color: scene.RGB{0, 255, 0}}
	white   = scene.Simple{Color: scene.RGB{255, 255, 255}}
	quarter = float32(math.Pi / 4)
)

// shapes collects NewShape results and keeps the first error, so preset
// builders read as a flat list of declarations.
type shapes struct {
	err error
}

func (b *shapes) add(mat scene.Material, t scene.Transform, g scene.Geometry) *scene.Shape {
	if b.err != nil {
		return nil
	}
	s, err := scene.NewShape(mat, t, g)
	if err != nil {
		b.err = err
	}
	return s
}

func group(b *shapes, t scene.Transform, children ...*scene.Shape) *scene.Shape {
	return b.add(black, t, scene.Composite{Children: children})
}

// buildDefault: a checkered floor under a squashed, turned group holding two
// spheres and a tilted checkered cube.
func buildDefault(Options) (*scene.Shape, error) {
	var b shapes
	floor := b.add(
		scene.Checkerboard{Color1: scene.RGB{255, 255, 255}, Color2: scene.RGB{127, 127, 127}, Scale: 1},
		scene.FromT(mathutil.Vec3{0, -2, 0}),
		scene.InfinitePlane{},
	)
	s1 := b.add(red, scene.Identity(), scene.Sphere{Radius: 1})
	s2 := b.add(green, scene.FromT(mathutil.Vec3{1, 1, -1}), scene.Sphere{Radius: 0.8})
	c1 := b.add(
		scene.Checkerboard{Color1: scene.RGB{255, 255, 0}, Color2: scene.RGB{0, 255, 255}, Scale: 0.333333},
		scene.FromTR(mathutil.Vec3{-1, -0.5, 0}, mathutil.RotX(quarter)),
		scene.Cube{Size: mathutil.Vec3{1, 1, 1}},
	)
	env := group(&b,
		scene.FromTRS(mathutil.Vec3{0, 0, -3}, mathutil.RotY(quarter), mathutil.Vec3{0.7, 1, 1}),
		s1, s2, c1,
	)
	root := group(&b, scene.Identity(), floor, env)
	return root, b.err
}

// buildTeapot loads teapot.obj and stands it on a cyan checkered plane, the
// whole group tipped toward the camera.
func buildTeapot(opts Options) (*scene.Shape, error) {
	mesh, err := objfile.Load(opts.modelPath("teapot"), objfile.Options{Charset: opts.Charset})
	if err != nil {
		return nil, err
	}
	poly, err := scene.NewPolygons(mesh.Object)
	if err != nil {
		return nil, err
	}

	var b shapes
	teapot := b.add(white, scene.Identity(), poly)
	floor := b.add(
		scene.Checkerboard{Color1: scene.RGB{0, 255, 255}, Color2: scene.RGB{0, 127, 127}, Scale: 1},
		scene.Identity(),
		scene.InfinitePlane{},
	)
	root := group(&b, scene.FromTR(mathutil.Vec3{0, -0.8, -6}, mathutil.RotX(quarter)), teapot, floor)
	return root, b.err
}

// buildSpheres: a row of spheres of growing radius resting on a floor, the
// middle one checkered.
func buildSpheres(Options) (*scene.Shape, error) {
	var b shapes
	floor := b.add(
		scene.Checkerboard{Color1: scene.RGB{230, 230, 230}, Color2: scene.RGB{60, 60, 60}, Scale: 0.5},
		scene.FromT(mathutil.Vec3{0, -1, 0}),
		scene.InfinitePlane{},
	)
	children := []*scene.Shape{floor}
	colors := []scene.Material{
		scene.Simple{Color: scene.RGB{220, 40, 40}},
		scene.Simple{Color: scene.RGB{240, 160, 20}},
		scene.Checkerboard{Color1: scene.RGB{40, 200, 80}, Color2: scene.RGB{20, 60, 200}, Scale: 0.25},
		scene.Simple{Color: scene.RGB{40, 120, 240}},
		scene.Simple{Color: scene.RGB{200, 60, 220}},
	}
	for i, mat := range colors {
		r := 0.3 + 0.1*float32(i)
		x := -2.4 + 1.2*float32(i)
		children = append(children, b.add(mat, scene.FromT(mathutil.Vec3{x, r - 1, -5}), scene.Sphere{Radius: r}))
	}
	root := group(&b, scene.Identity(), children...)
	return root, b.err
}
