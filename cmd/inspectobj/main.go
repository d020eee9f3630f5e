package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chewxy/math32"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/objfile"
	"raycast-renderer/internal/scene"
)

func main() {
	charset := flag.String("charset", "", "Source charset: utf-8, windows-1252, iso-8859-1")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspectobj [-charset name] file.obj...")
		os.Exit(1)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := inspect(path, *charset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(path, charset string) error {
	mesh, err := objfile.Load(path, objfile.Options{Charset: charset})
	if err != nil {
		return err
	}
	obj := mesh.Object
	fmt.Printf("%s: %q\n", path, mesh.Name)
	fmt.Printf("  Points: %d, Normals: %d, Faces: %d, Skipped: %d\n",
		len(obj.Points), len(obj.Normals), len(obj.Faces), mesh.Skipped)
	if len(mesh.Groups) > 0 {
		fmt.Printf("  Groups: %q\n", mesh.Groups)
	}

	lo, hi := obj.Bounds()
	size := hi.Sub(lo)
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("  Size: %.3f x %.3f x %.3f\n", size[0], size[1], size[2])

	// Surface area by dominant face direction
	var total float32
	areaByDir := map[string]float32{}
	degenerate := 0
	for _, f := range obj.Faces {
		a, b, c := obj.Points[f[0].Point], obj.Points[f[1].Point], obj.Points[f[2].Point]
		n := b.Sub(a).Cross(c.Sub(a))
		area := 0.5 * n.Len()
		if area == 0 {
			degenerate++
			continue
		}
		areaByDir[direction(n)] += area
		total += area
	}
	fmt.Printf("  Area: %.3f sq units, degenerate faces: %d\n", total, degenerate)
	for _, d := range []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"} {
		fmt.Printf("    %s: %.3f\n", d, areaByDir[d])
	}

	poly, err := scene.NewPolygons(obj)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("  Triangles ready for tracing: %d\n", poly.Len())
	return nil
}

func direction(n mathutil.Vec3) string {
	axis := 0
	for i := 1; i < 3; i++ {
		if math32.Abs(n[i]) > math32.Abs(n[axis]) {
			axis = i
		}
	}
	sign := "+"
	if n[axis] < 0 {
		sign = "-"
	}
	return sign + string("XYZ"[axis])
}
