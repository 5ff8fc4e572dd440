package export

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"skyrim-pbrgen/internal/config"
	"skyrim-pbrgen/internal/derive"
	"skyrim-pbrgen/internal/fileio"
	"skyrim-pbrgen/internal/pack"
	"skyrim-pbrgen/internal/postprocess"
	"skyrim-pbrgen/internal/texture"
)

// Job describes one source texture to run through the pipeline.
// Glow, Subsurface and Normal are optional companion images; an empty
// path skips the corresponding stage. Stem and OutDir default to the
// source's own name and directory.
type Job struct {
	Source     string
	Normal     string
	Glow       string
	Subsurface string

	Stem   string
	OutDir string

	Target Target
	Mode   Mode
	Params config.Params
}

// Result reports what one job produced. Outputs lists written files
// in emission order; Warnings carry per-output degradations that did
// not fail the job.
type Result struct {
	Source   string
	State    State
	Outputs  []string
	Warnings []string
	Err      error
}

// Planner runs jobs through extract, derive, pack and encode. The
// zero value works for plain-raster targets; compressed targets need
// an Encoder and degrade to PNG with a warning without one.
type Planner struct {
	Encoder ContainerEncoder
}

// Run executes one job. The context is checked between stages, so a
// canceled batch stops before starting the next expensive phase.
func (p *Planner) Run(ctx context.Context, job Job) Result {
	res := Result{Source: job.Source, State: StateIdle}
	fail := func(err error) Result {
		res.State = StateFailed
		res.Err = err
		return res
	}

	stem := job.Stem
	if stem == "" {
		base := filepath.Base(job.Source)
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}
	outDir := job.OutDir
	if outDir == "" {
		outDir = filepath.Dir(job.Source)
	}
	prof, ok := profiles[job.Target]
	if !ok {
		return fail(fmt.Errorf("export: unknown target %v", job.Target))
	}
	mode := job.Mode.effective(job.Target)
	pr := job.Params

	res.State = StateExtracting
	src, err := texture.Load(job.Source)
	if err != nil {
		return fail(err)
	}
	normSrc, err := loadCompanion(job.Normal, src.W, src.H)
	if err != nil {
		return fail(err)
	}
	glowSrc, err := loadCompanion(job.Glow, src.W, src.H)
	if err != nil {
		return fail(err)
	}
	subSrc, err := loadCompanion(job.Subsurface, src.W, src.H)
	if err != nil {
		return fail(err)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res.State = StateDeriving
	l := src.Luminance()
	heightRaw := derive.Height(l, pr.HeightContrast)

	var rough *texture.Field
	switch pr.RoughnessMode {
	case "constant":
		rough = derive.RoughnessConstant(src.W, src.H, pr.RoughnessValue)
	case "variance":
		rough = derive.RoughnessVariance(l, pr.VarianceRadius, pr.RoughnessGain)
	default:
		rough = derive.RoughnessAuto(l, pr.RoughnessGain)
	}

	var metal *texture.Field
	if pr.MetallicMode == "auto" {
		metal = derive.MetallicAuto(src, l, pr.MetallicThreshold, pr.MetallicGain)
	} else {
		metal = derive.MetallicConstant(src.W, src.H, pr.MetallicValue)
	}
	metalTrivial := pr.MetallicMode != "auto" && pr.MetallicValue == 0

	ao := derive.AO(heightRaw, pr.AORadius, pr.AOIntensity)

	// Look tweaks land on the finished maps; the normal and AO above
	// always derive from the untweaked height.
	height := derive.Scale(heightRaw, pr.HeightScale)
	rough = derive.Scale(rough, pr.RoughnessTweak)
	metal = derive.Scale(metal, pr.MetallicTweak)
	ao = derive.Pow(ao, pr.AOContrast)
	spec := derive.Specular(rough, pr.SpecularLevel)

	normal := normSrc
	if normal == nil {
		normal = derive.Normal(heightRaw, pr.NormalStrength)
	}
	if prof.heightAlpha {
		normal = derive.WithHeightAlpha(normal, height)
	}

	var glowMask *texture.Field
	if glowSrc != nil {
		ga := glowSrc.A
		if glowSrc.Opaque() {
			ga = nil
		}
		gl := glowSrc.Luminance()
		if pr.GlowBinary {
			glowMask = derive.GlowBinary(gl, ga, pr.GlowThreshold)
		} else {
			glowMask = derive.GlowSmooth(gl, ga, pr.GlowThreshold, pr.GlowIntensity)
		}
	}

	var subPercent *texture.Field
	var subTint *texture.Source
	if subSrc != nil {
		subPercent = subSrc.Luminance()
		if _, ok := prof.suffix[MapSubsurfaceTint]; ok {
			tm, err := derive.ParseTintMode(pr.TintMode)
			if err != nil {
				return fail(err)
			}
			subTint = derive.SpecTint(subSrc, rough, tm)
		}
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	var rmaos, cmask *image.NRGBA
	if prof.packs && mode != ModeSeparatesOnly {
		res.State = StatePacking
		rmaos = pack.RMAOS(rough, metal, ao, spec)
		if pr.ComplexMask {
			cmask = pack.ComplexMask(metal, height, ao)
		}
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res.State = StateEncoding
	type planned struct {
		kind MapKind
		img  *image.NRGBA
	}
	var outs []planned
	add := func(kind MapKind, img *image.NRGBA) {
		if _, ok := prof.suffix[kind]; ok {
			outs = append(outs, planned{kind, img})
		}
	}

	baseImg := src.NRGBA()
	if prof.edgeBleed {
		var coverage *texture.Field
		if src.Opaque() && glowMask != nil {
			coverage = glowMask
		}
		baseImg = postprocess.EdgeBleed(baseImg, coverage, postprocess.DefaultBleedIterations)
	}
	add(MapBase, baseImg)
	add(MapNormal, normal.NRGBA())
	add(MapHeight, height.NRGBA())
	if rmaos != nil {
		add(MapPacked, rmaos)
	}
	if cmask != nil {
		add(MapComplex, cmask)
	}
	if mode != ModeFull {
		for _, kind := range prof.separates {
			switch kind {
			case MapRough:
				add(kind, rough.NRGBA())
			case MapGloss:
				add(kind, derive.Complement(rough).NRGBA())
			case MapMetal:
				if !metalTrivial {
					add(kind, metal.NRGBA())
				}
			case MapAO:
				add(kind, ao.NRGBA())
			case MapSpec:
				add(kind, spec.NRGBA())
			}
		}
	}
	if glowMask != nil {
		add(MapGlow, glowMask.NRGBA())
	}
	if subPercent != nil {
		add(MapSubsurfacePercent, subPercent.NRGBA())
	}
	if subTint != nil {
		add(MapSubsurfaceTint, subTint.NRGBA())
	}

	for _, o := range outs {
		pathNoExt := filepath.Join(outDir, stem+prof.suffix[o.kind])
		var path, warn string
		var err error
		if prof.compressed {
			path, warn, err = WriteTexture(ctx, p.Encoder, pathNoExt, o.img)
		} else {
			path = pathNoExt + ".png"
			err = fileio.WritePNG(path, o.img)
		}
		if err != nil {
			if len(res.Outputs) > 0 {
				err = fmt.Errorf("export: %w after %d of %d files: %v",
					ErrPartialOutput, len(res.Outputs), len(outs), err)
			}
			return fail(err)
		}
		if warn != "" {
			res.Warnings = append(res.Warnings, warn)
		}
		res.Outputs = append(res.Outputs, path)
	}

	res.State = StateDone
	return res
}

// loadCompanion reads an optional secondary source and fits it to the
// base dimensions. An empty path is simply absent.
func loadCompanion(path string, w, h int) (*texture.Source, error) {
	if path == "" {
		return nil, nil
	}
	src, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	return texture.Fit(src, w, h)
}
