package derive

import "skyrim-pbrgen/internal/texture"

// Height maps luminance to a height field by stretching contrast around
// mid-gray. contrast 1 is an identity pass-through on luminance.
func Height(l *texture.Field, contrast float32) *texture.Field {
	out := texture.NewField(l.W, l.H)
	for i, v := range l.Pix {
		out.Pix[i] = texture.Clamp01((v-0.5)*contrast + 0.5)
	}
	return out
}
