package derive

import "skyrim-pbrgen/internal/texture"

// RoughnessConstant broadcasts a fixed roughness value.
func RoughnessConstant(w, h int, value float32) *texture.Field {
	return texture.Uniform(w, h, texture.Clamp01(value))
}

// RoughnessAuto inverts luminance into roughness: brighter source
// pixels are assumed smoother. gain amplifies the inversion.
func RoughnessAuto(l *texture.Field, gain float32) *texture.Field {
	out := texture.NewField(l.W, l.H)
	for i, v := range l.Pix {
		out.Pix[i] = texture.Clamp01(1 - v*gain)
	}
	return out
}

// RoughnessVariance estimates roughness from local luminance variance
// inside radius: busy micro-texture reads rough, uniform regions read
// smooth. The variance is normalized between its 5th and 95th
// percentile so isolated specks cannot flatten the whole map.
func RoughnessVariance(l *texture.Field, radius int, gain float32) *texture.Field {
	sq := texture.NewField(l.W, l.H)
	for i, v := range l.Pix {
		sq.Pix[i] = v * v
	}
	mean := BoxMean(l, radius)
	mean2 := BoxMean(sq, radius)

	variance := texture.NewField(l.W, l.H)
	for i := range variance.Pix {
		d := mean2.Pix[i] - mean.Pix[i]*mean.Pix[i]
		if d < 0 {
			d = 0
		}
		variance.Pix[i] = d
	}

	out := normalizePercentile(variance, 5, 95)
	for i, v := range out.Pix {
		out.Pix[i] = texture.Clamp01(v * gain)
	}
	return out
}

// Complement returns 1 - f. Gloss is always this strict complement of
// roughness, never an independent estimate.
func Complement(f *texture.Field) *texture.Field {
	out := texture.NewField(f.W, f.H)
	for i, v := range f.Pix {
		out.Pix[i] = 1 - v
	}
	return out
}
