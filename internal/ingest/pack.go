package ingest

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"skyrim-pbrgen/internal/derive"
	"skyrim-pbrgen/internal/export"
	"skyrim-pbrgen/internal/pack"
	"skyrim-pbrgen/internal/texture"
)

// refPriority orders the maps trusted to carry the set's working
// resolution. Reflectance maps come first so a half-size preview base
// color never shrinks the packed output.
var refPriority = [...]Kind{
	KindRoughness, KindGloss, KindAO, KindMetallic, KindBaseColor, KindNormal,
}

// Fills for reflectance slots with no authored map. The rough value
// reproduces byte 128 after quantization.
const (
	fillRough = 128.0 / 255.0
	fillMetal = 0.0
	fillAO    = 1.0
)

// Packer assembles authored map sets into game-ready texture sets.
// Nothing is derived here; maps the author did not ship are filled
// with neutral constants.
type Packer struct {
	Enc export.ContainerEncoder
}

// PackSet converts one material set into its Skyrim files under
// outDir. The base color (with any opacity mask in its alpha), the
// normal and the height map pass through at native size; the packed
// reflectance map is assembled at the set's reference size. A set
// without a base color still packs, with a warning.
func (p *Packer) PackSet(ctx context.Context, set MapSet, outDir string) export.Result {
	res := export.Result{Source: set.Stem, State: export.StateIdle}
	fail := func(err error) export.Result {
		res.State = export.StateFailed
		res.Err = err
		return res
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res.State = export.StateExtracting
	srcs := make(map[Kind]*texture.Source, len(set.Paths))
	for kind, path := range set.Paths {
		s, err := texture.Load(path)
		if err != nil {
			return fail(err)
		}
		srcs[kind] = s
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res.State = export.StatePacking
	refW, refH := 4, 4
	for _, kind := range refPriority {
		if s, ok := srcs[kind]; ok {
			refW, refH = s.W, s.H
			break
		}
	}
	fitL := func(kind Kind) (*texture.Field, error) {
		s, err := texture.Fit(srcs[kind], refW, refH)
		if err != nil {
			return nil, err
		}
		return s.Luminance(), nil
	}

	rough := texture.Uniform(refW, refH, fillRough)
	if _, ok := srcs[KindRoughness]; ok {
		l, err := fitL(KindRoughness)
		if err != nil {
			return fail(err)
		}
		rough = l
	} else if _, ok := srcs[KindGloss]; ok {
		l, err := fitL(KindGloss)
		if err != nil {
			return fail(err)
		}
		rough = derive.Complement(l)
	}

	metal := texture.Uniform(refW, refH, fillMetal)
	if _, ok := srcs[KindMetallic]; ok {
		l, err := fitL(KindMetallic)
		if err != nil {
			return fail(err)
		}
		metal = l
	}

	ao := texture.Uniform(refW, refH, fillAO)
	if _, ok := srcs[KindAO]; ok {
		l, err := fitL(KindAO)
		if err != nil {
			return fail(err)
		}
		ao = l
	}

	// The alpha slot carries authored specular when present, else an
	// approximation from roughness with a perceptual falloff.
	alpha := &pack.Assignment{Field: rough, Invert: true, Gamma: 2.2}
	if _, ok := srcs[KindSpecular]; ok {
		l, err := fitL(KindSpecular)
		if err != nil {
			return fail(err)
		}
		alpha = &pack.Assignment{Field: l}
	}
	rmaos := pack.Spec{
		R: &pack.Assignment{Field: rough, Invert: true},
		G: &pack.Assignment{Field: metal},
		B: &pack.Assignment{Field: ao},
		A: alpha,
	}.Image(refW, refH)

	var baseImg *image.NRGBA
	if base, ok := srcs[KindBaseColor]; ok {
		if mask, ok := srcs[KindMask]; ok {
			fitted, err := texture.Fit(mask, base.W, base.H)
			if err != nil {
				return fail(err)
			}
			base.A = fitted.Luminance()
		}
		baseImg = base.NRGBA()
	} else {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s: no base color map, packed maps only", set.Stem))
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res.State = export.StateEncoding
	type planned struct {
		name string
		img  *image.NRGBA
	}
	var outs []planned
	if baseImg != nil {
		outs = append(outs, planned{set.Stem, baseImg})
	}
	outs = append(outs, planned{set.Stem + "_rmaos", rmaos})
	if s, ok := srcs[KindSubsurfaceColor]; ok {
		outs = append(outs, planned{set.Stem + "_s", s.NRGBA()})
	}
	if s, ok := srcs[KindNormal]; ok {
		outs = append(outs, planned{set.Stem + "_n", s.NRGBA()})
	}
	if s, ok := srcs[KindHeight]; ok {
		outs = append(outs, planned{set.Stem + "_p", s.NRGBA()})
	}
	if s, ok := srcs[KindSubsurfaceAmount]; ok {
		outs = append(outs, planned{set.Stem + "_SubsurfacePercent", s.Luminance().NRGBA()})
	}

	for _, o := range outs {
		path, warn, err := export.WriteTexture(ctx, p.Enc, filepath.Join(outDir, o.name), o.img)
		if err != nil {
			if len(res.Outputs) > 0 {
				err = fmt.Errorf("ingest: %w after %d of %d files: %v",
					export.ErrPartialOutput, len(res.Outputs), len(outs), err)
			}
			return fail(err)
		}
		if warn != "" {
			res.Warnings = append(res.Warnings, warn)
		}
		res.Outputs = append(res.Outputs, path)
	}

	res.State = export.StateDone
	return res
}
