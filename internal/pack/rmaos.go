package pack

import (
	"image"

	"skyrim-pbrgen/internal/texture"
)

// RMAOS assembles the packed reflectance image consumed by the engine:
// gloss in red (roughness inverted), metallic in green, ambient
// occlusion in blue and specular in alpha.
func RMAOS(rough, metal, ao, spec *texture.Field) *image.NRGBA {
	return Spec{
		R: &Assignment{Field: rough, Invert: true},
		G: &Assignment{Field: metal},
		B: &Assignment{Field: ao},
		A: &Assignment{Field: spec},
	}.Image(rough.W, rough.H)
}

// ComplexMask assembles the environment-mask companion: metallic in
// red, a height and cavity blend in green, ambient occlusion in blue.
func ComplexMask(metal, height, ao *texture.Field) *image.NRGBA {
	blend := texture.NewField(height.W, height.H)
	for i := range blend.Pix {
		blend.Pix[i] = texture.Clamp01(0.8*height.Pix[i] + 0.2*(1-ao.Pix[i]))
	}
	return Spec{
		R: &Assignment{Field: metal},
		G: &Assignment{Field: blend},
		B: &Assignment{Field: ao},
	}.Image(height.W, height.H)
}
