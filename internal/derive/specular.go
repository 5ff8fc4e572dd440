package derive

import (
	"math"

	"skyrim-pbrgen/internal/texture"
)

// Specular derives a display-referred specular map from roughness:
// pow(1-roughness, 2.2) scaled by level. The 2.2 exponent is the sRGB
// gamma approximation, so level adjustments track perceived intensity.
func Specular(rough *texture.Field, level float32) *texture.Field {
	out := texture.NewField(rough.W, rough.H)
	for i, r := range rough.Pix {
		g := float32(math.Pow(float64(texture.Clamp01(1-r)), 2.2))
		out.Pix[i] = texture.Clamp01(g * level)
	}
	return out
}
