package derive

import (
	"math"

	"skyrim-pbrgen/internal/texture"
)

// Scale multiplies every sample by k and clamps. k 1 is an identity,
// which is the neutral setting for the look adjustments.
func Scale(f *texture.Field, k float32) *texture.Field {
	if k == 1 {
		return f
	}
	out := texture.NewField(f.W, f.H)
	for i, v := range f.Pix {
		out.Pix[i] = texture.Clamp01(v * k)
	}
	return out
}

// Pow raises every sample to exp and clamps. exp 1 is an identity;
// values above 1 deepen contrast, below 1 lift it.
func Pow(f *texture.Field, exp float32) *texture.Field {
	if exp == 1 {
		return f
	}
	out := texture.NewField(f.W, f.H)
	for i, v := range f.Pix {
		out.Pix[i] = texture.Clamp01(float32(math.Pow(float64(texture.Clamp01(v)), float64(exp))))
	}
	return out
}
