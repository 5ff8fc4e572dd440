package derive

import "skyrim-pbrgen/internal/texture"

// AO approximates ambient occlusion as height-field convexity: texels
// sitting below their neighborhood mean within radius read as
// occluded, flat regions receive full light. The occlusion signal is
// percentile-normalized before intensity scales it. This is an
// approximation, not a raytraced solution; the consuming renderer
// blends it multiplicatively with direct lighting.
func AO(height *texture.Field, radius int, intensity float32) *texture.Field {
	blur := BoxMean(height, radius)

	occl := texture.NewField(height.W, height.H)
	for i := range occl.Pix {
		if d := blur.Pix[i] - height.Pix[i]; d > 0 {
			occl.Pix[i] = d
		}
	}

	norm := normalizePercentile(occl, 5, 95)
	out := texture.NewField(height.W, height.H)
	for i, v := range norm.Pix {
		out.Pix[i] = 1 - texture.Clamp01(v*intensity)
	}
	return out
}
