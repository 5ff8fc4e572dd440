package pack

import (
	"image"
	"math"

	"skyrim-pbrgen/internal/texture"
)

// Assignment binds one output channel slot to a source field. The
// transforms run in a fixed order, invert first, then the gamma
// exponent, so an inverted corrected slot reads pow(1-v, Gamma).
type Assignment struct {
	Field  *texture.Field
	Invert bool
	Gamma  float32 // exponent applied after invert; 0 or 1 leaves values linear
}

func (a *Assignment) sample(i int) uint8 {
	v := a.Field.Pix[i]
	if a.Invert {
		v = 1 - v
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		v = float32(math.Pow(float64(texture.Clamp01(v)), float64(a.Gamma)))
	}
	return texture.U8(v)
}

// Spec declares which field lands in each channel of a packed image.
// Unassigned color slots read 0; an unassigned alpha stays opaque.
type Spec struct {
	R, G, B, A *Assignment
}

// Image renders the spec into a w by h NRGBA image. Assigned fields
// must match the requested dimensions.
func (s Spec) Image(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := w * h
	if s.A == nil {
		for i := 0; i < n; i++ {
			img.Pix[i*4+3] = 255
		}
	}
	for off, a := range [4]*Assignment{s.R, s.G, s.B, s.A} {
		if a == nil {
			continue
		}
		for i := 0; i < n; i++ {
			img.Pix[i*4+off] = a.sample(i)
		}
	}
	return img
}
