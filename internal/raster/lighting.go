package raster

import (
	"github.com/chewxy/math32"

	"raycast-renderer/internal/mathutil"
)

// DefaultShadowBias is how far along the light direction a shadow ray starts
// from the surface, as a multiple of ToLight.
const DefaultShadowBias = 1e-5

// LightConfig describes the single directional light.
type LightConfig struct {
	ToLight    mathutil.Vec3 // direction from surfaces toward the light; need not be unit
	ShadowBias float32
}

// DefaultLightConfig returns the standard sun: toward (1, 3, 2).
func DefaultLightConfig() LightConfig {
	return LightConfig{
		ToLight:    mathutil.Vec3{1, 3, 2},
		ShadowBias: DefaultShadowBias,
	}
}

// Intensity is the Lambertian term clamp(cos∠(normal, ToLight), 0, 1).
// There is no ambient term.
func (lc *LightConfig) Intensity(normal mathutil.Vec3) float32 {
	c := math32.Cos(normal.Angle(lc.ToLight))
	if math32.IsNaN(c) || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// ShadowOrigin offsets a surface point toward the light so the shadow ray
// does not re-hit the surface it starts on.
func (lc *LightConfig) ShadowOrigin(p mathutil.Vec3) mathutil.Vec3 {
	return p.Add(lc.ToLight.Scale(lc.ShadowBias))
}
