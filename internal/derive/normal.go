package derive

import (
	"math"

	"skyrim-pbrgen/internal/texture"
)

// Normal synthesizes a tangent-space normal map from a height field.
// Gradients are central differences with edge samples clamped to the
// nearest valid texel, never wrapped. strength 0 yields the flat
// normal (0.5, 0.5, 1.0) everywhere.
func Normal(h *texture.Field, strength float32) *texture.Source {
	w := h.W
	out := &texture.Source{
		W: w, H: h.H,
		R: texture.NewField(w, h.H),
		G: texture.NewField(w, h.H),
		B: texture.NewField(w, h.H),
		A: texture.Uniform(w, h.H, 1),
	}
	for y := 0; y < h.H; y++ {
		for x := 0; x < w; x++ {
			dx := (h.AtClamped(x+1, y) - h.AtClamped(x-1, y)) * 0.5
			dy := (h.AtClamped(x, y+1) - h.AtClamped(x, y-1)) * 0.5

			nx := -dx * strength
			ny := -dy * strength
			inv := 1 / float32(math.Sqrt(float64(nx*nx+ny*ny+1)))

			i := y*w + x
			out.R.Pix[i] = nx*inv*0.5 + 0.5
			out.G.Pix[i] = ny*inv*0.5 + 0.5
			out.B.Pix[i] = inv*0.5 + 0.5
		}
	}
	return out
}

// WithHeightAlpha returns the normal source with the height field in
// its alpha channel, the combined normal+height layout.
func WithHeightAlpha(n *texture.Source, h *texture.Field) *texture.Source {
	return &texture.Source{W: n.W, H: n.H, R: n.R, G: n.G, B: n.B, A: h}
}
