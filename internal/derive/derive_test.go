package derive

import (
	"math"
	"testing"

	"skyrim-pbrgen/internal/texture"
)

func rampField(w, h int) *texture.Field {
	f := texture.NewField(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, float32(x)/float32(w-1))
		}
	}
	return f
}

func TestHeightIdentityAtUnitContrast(t *testing.T) {
	l := rampField(16, 4)
	h := Height(l, 1)
	for i := range l.Pix {
		if h.Pix[i] != l.Pix[i] {
			t.Fatalf("pixel %d: height %g != luminance %g", i, h.Pix[i], l.Pix[i])
		}
	}
}

func TestHeightContrastClamps(t *testing.T) {
	l := rampField(16, 1)
	h := Height(l, 4)
	if got := h.At(0, 0); got != 0 {
		t.Fatalf("dark end not clamped: %g", got)
	}
	if got := h.At(15, 0); got != 1 {
		t.Fatalf("bright end not clamped: %g", got)
	}
	if got := texture.U8(h.At(7, 0)); got >= 128 {
		// pivot stays below mid-gray for the left half
		t.Fatalf("pivot moved: %d", got)
	}
}

func TestNormalFlatAtZeroStrength(t *testing.T) {
	h := rampField(8, 8)
	n := Normal(h, 0)
	for i := range n.R.Pix {
		if n.R.Pix[i] != 0.5 || n.G.Pix[i] != 0.5 || n.B.Pix[i] != 1 {
			t.Fatalf("pixel %d not flat: (%g, %g, %g)", i, n.R.Pix[i], n.G.Pix[i], n.B.Pix[i])
		}
	}
}

func TestNormalUnitLength(t *testing.T) {
	h := rampField(8, 8)
	n := Normal(h, 3)
	for i := range n.R.Pix {
		x := float64(n.R.Pix[i]*2 - 1)
		y := float64(n.G.Pix[i]*2 - 1)
		z := float64(n.B.Pix[i]*2 - 1)
		if ln := math.Sqrt(x*x + y*y + z*z); math.Abs(ln-1) > 1e-5 {
			t.Fatalf("pixel %d length %g", i, ln)
		}
	}
}

func TestNormalEdgeNoWraparound(t *testing.T) {
	// A single bright column at x=0 must not leak a gradient into the
	// right edge, which it would if sampling wrapped.
	h := texture.NewField(8, 1)
	h.Set(0, 0, 1)
	n := Normal(h, 5)
	if got := n.R.At(7, 0); got != 0.5 {
		t.Fatalf("right edge sees wrapped gradient: %g", got)
	}
	if got := n.R.At(0, 0); got <= 0.5 {
		// downhill to the right tilts the normal toward +x
		t.Fatalf("left edge gradient missing: %g", got)
	}
}

func TestGlossRoughnessComplement(t *testing.T) {
	l := rampField(16, 16)
	for _, rough := range []*texture.Field{
		RoughnessConstant(16, 16, 0.3),
		RoughnessAuto(l, 1.2),
		RoughnessVariance(l, 2, 1),
	} {
		gloss := Complement(rough)
		for i := range rough.Pix {
			if sum := gloss.Pix[i] + rough.Pix[i]; math.Abs(float64(sum-1)) > 1e-6 {
				t.Fatalf("pixel %d: gloss+rough = %g", i, sum)
			}
		}
	}
}

func TestRoughnessAutoFormula(t *testing.T) {
	l := texture.Uniform(2, 2, 0.8)
	r := RoughnessAuto(l, 1)
	if got := r.At(0, 0); math.Abs(float64(got)-0.2) > 1e-6 {
		t.Fatalf("auto roughness = %g, want 0.2", got)
	}
	r = RoughnessAuto(l, 2)
	if got := r.At(0, 0); got != 0 {
		t.Fatalf("gain overdrive not clamped: %g", got)
	}
}

func TestRoughnessVarianceFlatIsZero(t *testing.T) {
	l := texture.Uniform(16, 16, 0.5)
	r := RoughnessVariance(l, 3, 1.2)
	for i, v := range r.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: flat field variance %g", i, v)
		}
	}
}

func TestMetallicAutoBrightGrayOnly(t *testing.T) {
	src := &texture.Source{
		W: 3, H: 1,
		R: texture.NewField(3, 1),
		G: texture.NewField(3, 1),
		B: texture.NewField(3, 1),
		A: texture.Uniform(3, 1, 1),
	}
	// bright gray, bright saturated red, dark gray
	src.R.Pix[0], src.G.Pix[0], src.B.Pix[0] = 0.95, 0.95, 0.95
	src.R.Pix[1], src.G.Pix[1], src.B.Pix[1] = 1.0, 0.2, 0.2
	src.R.Pix[2], src.G.Pix[2], src.B.Pix[2] = 0.3, 0.3, 0.3

	m := MetallicAuto(src, src.Luminance(), 0.86, 1)
	if m.Pix[0] != 1 {
		t.Fatalf("bright gray not metal: %g", m.Pix[0])
	}
	if m.Pix[1] != 0 {
		t.Fatalf("saturated pixel scored metal: %g", m.Pix[1])
	}
	if m.Pix[2] != 0 {
		t.Fatalf("dark pixel scored metal: %g", m.Pix[2])
	}
}

func TestAOFlatFieldFullyLit(t *testing.T) {
	h := texture.Uniform(16, 16, 0.5)
	ao := AO(h, 4, 1)
	for i, v := range ao.Pix {
		if v != 1 {
			t.Fatalf("pixel %d: flat field occluded to %g", i, v)
		}
	}
}

func TestAODentDarkens(t *testing.T) {
	h := texture.Uniform(17, 17, 0.8)
	h.Set(8, 8, 0.0)
	ao := AO(h, 3, 1)
	if center, edge := ao.At(8, 8), ao.At(0, 0); center >= edge {
		t.Fatalf("dent %g not darker than flat %g", center, edge)
	}
}

func TestSpecularFormula(t *testing.T) {
	rough := texture.Uniform(2, 1, 0.5)
	s := Specular(rough, 1)
	want := math.Pow(0.5, 2.2)
	if got := float64(s.At(0, 0)); math.Abs(got-want) > 1e-6 {
		t.Fatalf("specular = %g, want %g", got, want)
	}
	s = Specular(rough, 10)
	if got := s.At(0, 0); got != 1 {
		t.Fatalf("level overdrive not clamped: %g", got)
	}
}

func TestGlowBinaryTwoValued(t *testing.T) {
	l := rampField(64, 1)
	mask := GlowBinary(l, nil, 0.5)
	for i, v := range mask.Pix {
		if v != 0 && v != 1 {
			t.Fatalf("pixel %d: binary mask %g", i, v)
		}
	}
	if mask.At(63, 0) != 1 || mask.At(0, 0) != 0 {
		t.Fatalf("threshold split wrong: %g %g", mask.At(0, 0), mask.At(63, 0))
	}
}

func TestGlowBinaryThresholdScenario(t *testing.T) {
	l := texture.NewField(2, 1)
	l.Set(0, 0, 0.9)
	l.Set(1, 0, 0.3)
	mask := GlowBinary(l, nil, 0.5)
	if got := texture.U8(mask.At(0, 0)); got != 255 {
		t.Fatalf("bright pixel mask = %d, want 255", got)
	}
	if got := texture.U8(mask.At(1, 0)); got != 0 {
		t.Fatalf("dim pixel mask = %d, want 0", got)
	}
}

func TestGlowBinaryAlphaCutout(t *testing.T) {
	l := texture.Uniform(2, 1, 0.9)
	alpha := texture.NewField(2, 1)
	alpha.Set(0, 0, 1)
	alpha.Set(1, 0, 0.2)
	mask := GlowBinary(l, alpha, 0.5)
	if mask.At(0, 0) != 1 || mask.At(1, 0) != 0 {
		t.Fatalf("alpha cutout not applied: %g %g", mask.At(0, 0), mask.At(1, 0))
	}
}

func TestGlowSmoothMonotonic(t *testing.T) {
	l := rampField(128, 1)
	mask := GlowSmooth(l, nil, 0.4, 1)
	for x := 1; x < 128; x++ {
		if mask.At(x, 0) < mask.At(x-1, 0) {
			t.Fatalf("mask not monotonic at %d: %g < %g", x, mask.At(x, 0), mask.At(x-1, 0))
		}
	}
	if mask.At(0, 0) != 0 {
		t.Fatalf("below threshold not zero: %g", mask.At(0, 0))
	}
	if mask.At(127, 0) != 1 {
		t.Fatalf("top of ramp not full: %g", mask.At(127, 0))
	}
}

func TestGlowSmoothMaxThreshold(t *testing.T) {
	// threshold 1 collapses the falloff window; nothing may glow and
	// the floored denominator must keep the division finite
	l := texture.Uniform(2, 1, 1)
	mask := GlowSmooth(l, nil, 1, 1)
	if got := mask.At(0, 0); got != 0 || math.IsNaN(float64(got)) {
		t.Fatalf("threshold 1 mask = %g, want 0", got)
	}
}

func TestSpecTintAlphaExponent(t *testing.T) {
	sub := &texture.Source{
		W: 1, H: 1,
		R: texture.Uniform(1, 1, 0.4),
		G: texture.Uniform(1, 1, 0.4),
		B: texture.Uniform(1, 1, 0.4),
		A: texture.Uniform(1, 1, 1),
	}
	rough := texture.Uniform(1, 1, 0.5)

	def := SpecTint(sub, rough, TintDefault)
	if want := math.Pow(0.5, 0.75); math.Abs(float64(def.A.Pix[0])-want) > 1e-6 {
		t.Fatalf("default gloss alpha %g, want %g", def.A.Pix[0], want)
	}

	skin := SpecTint(sub, rough, TintSkin)
	if want := float32(0.4 * 1.06); math.Abs(float64(skin.R.Pix[0]-want)) > 1e-6 {
		t.Fatalf("skin red tint %g, want %g", skin.R.Pix[0], want)
	}
	if skin.A.Pix[0] <= def.A.Pix[0] {
		t.Fatalf("skin gloss %g should be softer than default %g", skin.A.Pix[0], def.A.Pix[0])
	}

	armor := SpecTint(sub, rough, TintArmor)
	if armor.A.Pix[0] >= def.A.Pix[0] {
		t.Fatalf("armor gloss %g should be sharper than default %g", armor.A.Pix[0], def.A.Pix[0])
	}
}

func TestParseTintMode(t *testing.T) {
	for name, want := range map[string]TintMode{
		"":        TintDefault,
		"default": TintDefault,
		"leaf":    TintLeaf,
		"skin":    TintSkin,
		"armor":   TintArmor,
	} {
		got, err := ParseTintMode(name)
		if err != nil || got != want {
			t.Fatalf("parse %q: %v %v", name, got, err)
		}
	}
	if _, err := ParseTintMode("chrome"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestAdjustIdentity(t *testing.T) {
	f := rampField(8, 1)
	if got := Scale(f, 1); got != f {
		t.Fatalf("scale 1 should pass through")
	}
	if got := Pow(f, 1); got != f {
		t.Fatalf("pow 1 should pass through")
	}
	half := Scale(f, 0.5)
	if got := half.At(7, 0); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Fatalf("scale 0.5 top = %g", got)
	}
}

func TestBoxMeanWindow(t *testing.T) {
	f := texture.NewField(3, 3)
	f.Set(1, 1, 0.9)
	m := BoxMean(f, 1)
	if want := float32(0.9) / 9; math.Abs(float64(m.At(1, 1)-want)) > 1e-6 {
		t.Fatalf("center mean %g, want %g", m.At(1, 1), want)
	}
	// corner window is 2x2
	if want := float32(0.9) / 4; math.Abs(float64(m.At(0, 0)-want)) > 1e-6 {
		t.Fatalf("corner mean %g, want %g", m.At(0, 0), want)
	}
}
