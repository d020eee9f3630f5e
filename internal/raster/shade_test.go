package raster

import (
	"testing"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/scene"
)

func mustShape(t *testing.T, mat scene.Material, tr scene.Transform, g scene.Geometry) *scene.Shape {
	t.Helper()
	s, err := scene.NewShape(mat, tr, g)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	return s
}

var red = scene.Simple{Color: scene.RGB{255, 0, 0}}

func TestShade_LitSphere(t *testing.T) {
	sphere := mustShape(t, red, scene.Identity(), scene.Sphere{Radius: 1})
	lc := LightConfig{ToLight: mathutil.Vec3{0, 0, 1}, ShadowBias: DefaultShadowBias}

	rad, hit := Shade(sphere, scene.Ray{Origin: mathutil.Vec3{0, 0, 3}, Dir: mathutil.Vec3{0, 0, -1}}, &lc)
	if !hit {
		t.Fatal("expected hit")
	}
	// the light is straight behind the camera: full intensity
	if got := rad.Quantize(); got[0] < 254 || got[1] != 0 || got[2] != 0 {
		t.Errorf("color = %v, want full red", got)
	}
}

func TestShade_Miss(t *testing.T) {
	sphere := mustShape(t, red, scene.Identity(), scene.Sphere{Radius: 1})
	lc := DefaultLightConfig()
	rad, hit := Shade(sphere, scene.Ray{Origin: mathutil.Vec3{3, 0, 3}, Dir: mathutil.Vec3{0, 0, -1}}, &lc)
	if hit {
		t.Error("expected miss")
	}
	if rad != (Radiance{}) {
		t.Errorf("radiance = %v, want zero", rad)
	}
}

func TestShade_Shadowed(t *testing.T) {
	floor := mustShape(t, red, scene.Identity(), scene.InfinitePlane{})
	blocker := mustShape(t, red, scene.FromT(mathutil.Vec3{0, 2, 0}), scene.Cube{Size: mathutil.Vec3{1, 1, 1}})
	world := mustShape(t, nil, scene.Identity(), scene.Composite{Children: []*scene.Shape{floor, blocker}})
	lc := LightConfig{ToLight: mathutil.Vec3{0, 1, 0}, ShadowBias: DefaultShadowBias}

	// straight below the blocker
	rad, hit := Shade(world, scene.Ray{Origin: mathutil.Vec3{0.1, 5, 3}, Dir: mathutil.Vec3{0, -5, -3}.Normalize()}, &lc)
	if !hit {
		t.Fatal("expected the floor to be hit")
	}
	if rad != (Radiance{}) {
		t.Errorf("occluded point has radiance %v", rad)
	}

	// well outside the blocker's shadow
	rad, hit = Shade(world, scene.Ray{Origin: mathutil.Vec3{4, 5, 3}, Dir: mathutil.Vec3{0, -5, -3}.Normalize()}, &lc)
	if !hit {
		t.Fatal("expected the floor to be hit")
	}
	if rad.Quantize()[0] == 0 {
		t.Error("unoccluded point is unlit")
	}
}

func TestShade_FacingAwayFromLight(t *testing.T) {
	// the camera sees the lower half of the plane's underside while the light is above
	plane := mustShape(t, red, scene.Identity(), scene.InfinitePlane{})
	lc := LightConfig{ToLight: mathutil.Vec3{0, -1, 0}, ShadowBias: DefaultShadowBias}
	rad, hit := Shade(plane, scene.Ray{Origin: mathutil.Vec3{0, 1, 0}, Dir: mathutil.Vec3{0, -1, -1}}, &lc)
	if !hit {
		t.Fatal("expected hit")
	}
	if rad != (Radiance{}) {
		t.Errorf("radiance = %v, want zero for a surface facing away", rad)
	}
}

func TestSurfaceColor_CheckerboardFollowsTransform(t *testing.T) {
	board := scene.Checkerboard{Color1: scene.RGB{255, 255, 255}, Color2: scene.RGB{127, 127, 127}, Scale: 1}

	plane := mustShape(t, board, scene.Identity(), scene.InfinitePlane{})
	h1, ok1 := plane.Intersect(scene.Ray{Origin: mathutil.Vec3{0.4, 1, 0.4}, Dir: mathutil.Vec3{0, -1, 0}})
	h2, ok2 := plane.Intersect(scene.Ray{Origin: mathutil.Vec3{1.4, 1, 0.4}, Dir: mathutil.Vec3{0, -1, 0}})
	if !ok1 || !ok2 {
		t.Fatal("expected plane hits")
	}
	if c1, c2 := SurfaceColor(h1), SurfaceColor(h2); c1 == c2 {
		t.Errorf("adjacent cells share color %v", c1)
	} else if c1 != board.Color1 {
		t.Errorf("origin cell = %v, want Color1", c1)
	}

	// moving the plane by one cell along x swaps the pattern at a fixed world point
	shifted := mustShape(t, board, scene.FromT(mathutil.Vec3{1, 0, 0}), scene.InfinitePlane{})
	h3, ok := shifted.Intersect(scene.Ray{Origin: mathutil.Vec3{0.4, 1, 0.4}, Dir: mathutil.Vec3{0, -1, 0}})
	if !ok {
		t.Fatal("expected hit on shifted plane")
	}
	if SurfaceColor(h3) != board.Color2 {
		t.Errorf("shifted plane color = %v, want Color2", SurfaceColor(h3))
	}
}

func TestRadianceQuantize(t *testing.T) {
	tests := []struct {
		in   Radiance
		want scene.RGB
	}{
		{Radiance{0, 0, 0}, scene.RGB{0, 0, 0}},
		{Radiance{254.9, 127.99, 0.5}, scene.RGB{254, 127, 0}},
		{Radiance{300, -4, 255}, scene.RGB{255, 0, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.Quantize(); got != tt.want {
			t.Errorf("Quantize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRadianceDiv_ExactAverages(t *testing.T) {
	// Summing n equal samples and dividing by n must give the sample back
	// before truncation.
	for n := 2; n <= 64; n++ {
		for v := 1; v <= 255; v++ {
			var sum Radiance
			for k := 0; k < n; k++ {
				sum = sum.Add(Radiance{float32(v), float32(v), float32(v)})
			}
			got := sum.Div(float32(n)).Quantize()
			want := uint8(v)
			if got != (scene.RGB{want, want, want}) {
				t.Fatalf("n=%d v=%d: average = %v, want %d", n, v, got, want)
			}
		}
	}
}

func TestIntensity(t *testing.T) {
	lc := LightConfig{ToLight: mathutil.Vec3{0, 2, 0}}
	tests := []struct {
		name   string
		normal mathutil.Vec3
		want   float32
	}{
		{"facing", mathutil.Vec3{0, 1, 0}, 1},
		{"grazing", mathutil.Vec3{1, 0, 0}, 0},
		{"away", mathutil.Vec3{0, -1, 0}, 0},
		{"oblique", mathutil.Vec3{1, 1, 0}.Normalize(), 0.70710677},
		{"zero normal", mathutil.Vec3{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lc.Intensity(tt.normal)
			if d := got - tt.want; d > 1e-4 || d < -1e-4 {
				t.Errorf("Intensity = %f, want %f", got, tt.want)
			}
		})
	}
}
