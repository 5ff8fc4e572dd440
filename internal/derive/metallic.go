package derive

import "skyrim-pbrgen/internal/texture"

// maxMetalSaturation is the HSV saturation ceiling for the auto
// heuristic. Tinted pixels above it are dielectric paint, not metal.
const maxMetalSaturation = 0.25

// MetallicConstant broadcasts a fixed metallic value.
func MetallicConstant(w, h int, value float32) *texture.Field {
	return texture.Uniform(w, h, texture.Clamp01(value))
}

// MetallicAuto favors bright near-gray pixels for metal: luminance at
// or above threshold with saturation at or below the ceiling scores
// gain, everything else scores zero.
func MetallicAuto(src *texture.Source, l *texture.Field, threshold, gain float32) *texture.Field {
	out := texture.NewField(src.W, src.H)
	v := texture.Clamp01(gain)
	for i := range out.Pix {
		if l.Pix[i] < threshold {
			continue
		}
		if saturation(src.R.Pix[i], src.G.Pix[i], src.B.Pix[i]) > maxMetalSaturation {
			continue
		}
		out.Pix[i] = v
	}
	return out
}

func saturation(r, g, b float32) float32 {
	max, min := r, r
	if g > max {
		max = g
	} else if g < min {
		min = g
	}
	if b > max {
		max = b
	} else if b < min {
		min = b
	}
	if max <= 0 {
		return 0
	}
	return (max - min) / max
}
