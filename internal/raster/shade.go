package raster

import "raycast-renderer/internal/scene"

// Scene is anything rays can be cast against. *scene.Shape satisfies it.
type Scene interface {
	Intersect(r scene.Ray) (scene.Intersection, bool)
}

// Radiance is an unquantized color in 0..255 per channel.
type Radiance [3]float32

func (r Radiance) Add(o Radiance) Radiance {
	return Radiance{r[0] + o[0], r[1] + o[1], r[2] + o[2]}
}

func (r Radiance) Scale(s float32) Radiance {
	return Radiance{r[0] * s, r[1] * s, r[2] * s}
}

// Div divides each channel by n.
func (r Radiance) Div(n float32) Radiance {
	return Radiance{r[0] / n, r[1] / n, r[2] / n}
}

// Quantize truncates each channel to 8 bits.
func (r Radiance) Quantize() scene.RGB {
	var c scene.RGB
	for i, v := range r {
		switch {
		case v <= 0:
			c[i] = 0
		case v >= 255:
			c[i] = 255
		default:
			c[i] = uint8(v)
		}
	}
	return c
}

// Shade traces one camera ray. hit reports whether the primary ray struck
// anything; a shadowed or missed ray returns zero radiance.
func Shade(s Scene, r scene.Ray, lc *LightConfig) (rad Radiance, hit bool) {
	h, ok := s.Intersect(r)
	if !ok {
		return Radiance{}, false
	}

	shadow := scene.Ray{Origin: lc.ShadowOrigin(h.Pos), Dir: lc.ToLight}
	if _, blocked := s.Intersect(shadow); blocked {
		return Radiance{}, true
	}

	intensity := lc.Intensity(h.Normal)
	if intensity == 0 {
		return Radiance{}, true
	}
	c := SurfaceColor(h)
	return Radiance{float32(c[0]), float32(c[1]), float32(c[2])}.Scale(intensity), true
}

// SurfaceColor resolves the hit material. Patterned materials are evaluated
// in the hit's accumulated local frame so they follow the shape's transforms.
func SurfaceColor(h scene.Intersection) scene.RGB {
	if h.Material == nil {
		return scene.RGB{}
	}
	if !h.Material.Patterned() {
		return h.Material.ColorAt(h.Pos)
	}
	return h.Material.ColorAt(h.FramePoint(h.Pos))
}
