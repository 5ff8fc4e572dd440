package derive

import (
	"math"

	"skyrim-pbrgen/internal/texture"
)

// GlowBinary thresholds glow-source luminance into a hard mask for
// alpha-test opacity. Samples under a half-transparent alpha are
// forced off, so the output stays strictly two-valued. alpha may be
// nil when the glow source has no cutout.
func GlowBinary(l, alpha *texture.Field, threshold float32) *texture.Field {
	out := texture.NewField(l.W, l.H)
	for i, v := range l.Pix {
		if v < threshold {
			continue
		}
		if alpha != nil && alpha.Pix[i] < 0.5 {
			continue
		}
		out.Pix[i] = 1
	}
	return out
}

// GlowSmooth ramps glow-source luminance above the threshold into an
// emissive falloff mask scaled by intensity, attenuated by source
// alpha. alpha may be nil.
func GlowSmooth(l, alpha *texture.Field, threshold, intensity float32) *texture.Field {
	den := 1 - threshold
	if den < 1.0/255 {
		den = 1.0 / 255
	}
	out := texture.NewField(l.W, l.H)
	for i, v := range l.Pix {
		m := texture.Clamp01((v-threshold)/den) * intensity
		if alpha != nil {
			m *= float32(math.Pow(float64(alpha.Pix[i]), 0.9))
		}
		out.Pix[i] = texture.Clamp01(m)
	}
	return out
}
