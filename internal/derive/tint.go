package derive

import (
	"fmt"
	"math"

	"skyrim-pbrgen/internal/texture"
)

// TintMode selects the channel weighting for the subsurface/specular
// color map.
type TintMode int

const (
	TintDefault TintMode = iota
	TintLeaf
	TintSkin
	TintArmor
)

// ParseTintMode maps a configuration name to a TintMode.
func ParseTintMode(s string) (TintMode, error) {
	switch s {
	case "", "default":
		return TintDefault, nil
	case "leaf":
		return TintLeaf, nil
	case "skin":
		return TintSkin, nil
	case "armor":
		return TintArmor, nil
	}
	return TintDefault, fmt.Errorf("derive: unknown tint mode %q", s)
}

// SpecTint builds the tinted subsurface/specular color map. RGB is the
// subsurface source shifted per mode; alpha carries gloss shaped by a
// per-mode falloff exponent.
func SpecTint(sub *texture.Source, rough *texture.Field, mode TintMode) *texture.Source {
	w, h := sub.W, sub.H
	out := &texture.Source{
		W: w, H: h,
		R: texture.NewField(w, h),
		G: texture.NewField(w, h),
		B: texture.NewField(w, h),
		A: texture.NewField(w, h),
	}

	glossExp := 0.75
	switch mode {
	case TintLeaf:
		glossExp = 0.60
	case TintSkin:
		glossExp = 0.50
	case TintArmor:
		glossExp = 1.20
	}

	for i := 0; i < w*h; i++ {
		r, g, b := sub.R.Pix[i], sub.G.Pix[i], sub.B.Pix[i]
		switch mode {
		case TintLeaf:
			g = texture.Clamp01(g * 1.15)
			r = texture.Clamp01(r * 1.03)
			g = texture.Clamp01(g * 1.03)
			b = texture.Clamp01(b * 1.03)
		case TintSkin:
			r = texture.Clamp01(r * 1.06)
			g = texture.Clamp01(g * 1.03)
		case TintArmor:
			l := 0.2126*r + 0.7152*g + 0.0722*b
			r = 0.65*r + 0.35*l
			g = 0.65*g + 0.35*l
			b = texture.Clamp01((0.65*b + 0.35*l) * 1.03)
		}
		out.R.Pix[i] = r
		out.G.Pix[i] = g
		out.B.Pix[i] = b

		gloss := texture.Clamp01(1 - rough.Pix[i])
		out.A.Pix[i] = float32(math.Pow(float64(gloss), glossExp))
	}
	return out
}
