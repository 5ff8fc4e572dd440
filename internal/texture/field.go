package texture

import "image"

// Field is a single-channel image with samples normalized to [0,1].
// Derivation stages return new Fields rather than mutating their inputs.
type Field struct {
	W, H int
	Pix  []float32
}

// NewField allocates a zero-filled field.
func NewField(w, h int) *Field {
	return &Field{W: w, H: h, Pix: make([]float32, w*h)}
}

// Uniform returns a field filled with a constant value.
func Uniform(w, h int, v float32) *Field {
	f := NewField(w, h)
	for i := range f.Pix {
		f.Pix[i] = v
	}
	return f
}

func (f *Field) At(x, y int) float32 {
	return f.Pix[y*f.W+x]
}

func (f *Field) Set(x, y int, v float32) {
	f.Pix[y*f.W+x] = v
}

// AtClamped samples with out-of-range coordinates clamped to the edge
// texel. There is no wraparound.
func (f *Field) AtClamped(x, y int) float32 {
	if x < 0 {
		x = 0
	} else if x >= f.W {
		x = f.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.H {
		y = f.H - 1
	}
	return f.Pix[y*f.W+x]
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := NewField(f.W, f.H)
	copy(c.Pix, f.Pix)
	return c
}

// NRGBA renders the field as an opaque grayscale image.
func (f *Field) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	for i, v := range f.Pix {
		g := U8(v)
		o := i * 4
		img.Pix[o] = g
		img.Pix[o+1] = g
		img.Pix[o+2] = g
		img.Pix[o+3] = 255
	}
	return img
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// U8 quantizes a normalized sample to one 8-bit channel value. Every
// output path goes through this so packed and separate files agree
// byte for byte.
func U8(v float32) uint8 {
	return uint8(Clamp01(v)*255 + 0.5)
}
