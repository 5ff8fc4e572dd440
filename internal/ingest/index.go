package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"skyrim-pbrgen/internal/texture"
)

// Kind names the role an authored texture plays in a material set.
type Kind int

const (
	KindBaseColor Kind = iota
	KindNormal
	KindRoughness
	KindGloss
	KindAO
	KindMetallic
	KindHeight
	KindMask
	KindSpecular
	KindSubsurfaceColor
	KindSubsurfaceAmount
)

// MapSet groups the authored maps of one material stem.
type MapSet struct {
	Stem  string
	Paths map[Kind]string
}

// roleSuffixes are stripped from filenames to recover the stem.
// Ordered so that longer spellings win over their prefixes, e.g.
// _BaseColor strips before a bare _Color ever matches.
var roleSuffixes = []string{
	"_BaseColor", "_Basecolour", "_BaseColour", "_Base_Color", "_Albedo",
	"_SubsurfaceColor", "_CoatColor", "_Colour", "_Color",
	"_Normal", "_NormalMap", "_Roughness", "_Rough",
	"_Gloss", "_Glossiness", "_AO", "_AmbientOcclusion", "_Occlusion",
	"_Metallic", "_Metalness", "_Metal", "_Height", "_Displacement",
	"_ParallaxHeight", "_Parallax", "_Depth", "_Opacity", "_Mask",
	"_Cutout", "_Alpha", "_SubsurfaceAmount", "_Translucency",
	"_Transmission", "_Subsurface", "_SubSurface", "_SSS", "_Specular",
}

func stemOf(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, suf := range roleSuffixes {
		if strings.HasSuffix(base, suf) {
			return base[:len(base)-len(suf)]
		}
	}
	return base
}

// detectKind classifies a file by its lowercase stem-less name. The
// checks run in a fixed priority order because vendor names overlap,
// e.g. "Leaf_SubsurfaceColor" must not read as a base color.
func detectKind(name string) (Kind, bool) {
	has := func(s string) bool { return strings.Contains(name, s) }
	ends := func(s string) bool { return strings.HasSuffix(name, s) }

	switch {
	case has("subsurfaceamount") || has("translucency") || has("transmission"):
		return KindSubsurfaceAmount, true
	case has("subsurfacecolor") || has("coatcolor"):
		return KindSubsurfaceColor, true
	case has("opacity") || has("cutout") || ends("_mask") || ends("_alpha"):
		return KindMask, true
	case has("normal"):
		return KindNormal, true
	case has("roughness") || ends("_rough"):
		return KindRoughness, true
	case has("gloss"):
		return KindGloss, true
	case ends("_ao") || has("ambientocclusion") || ends("_occlusion"):
		return KindAO, true
	case has("metallic") || has("metalness") || ends("_metal"):
		return KindMetallic, true
	case has("height") || has("displacement") || ends("_parallax") || ends("_depth"):
		return KindHeight, true
	case has("specular"):
		return KindSpecular, true
	case has("basecolor") || has("basecolour") || has("base_color") || has("base_colour") ||
		has("albedo") || has("diffuse"):
		if !has("subsurface") {
			return KindBaseColor, true
		}
		return 0, false
	}
	return 0, false
}

// Scan groups the raster files of one directory into material sets.
// Filenames with no recognizable role fall back to base color when
// they look like foliage ("leaf"/"branch"), matching how SpeedTree
// atlases are usually named; everything else is ignored. The first
// base color seen for a stem wins, later files of other roles
// overwrite earlier ones.
func Scan(dir string) ([]MapSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !texture.SupportedExt(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	groups := make(map[string]*MapSet)
	for _, name := range names {
		lower := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		kind, ok := detectKind(lower)
		if !ok {
			if strings.Contains(lower, "leaf") || strings.Contains(lower, "branch") {
				kind = KindBaseColor
			} else {
				continue
			}
		}

		path := filepath.Join(dir, name)
		stem := stemOf(path)
		set, ok := groups[stem]
		if !ok {
			set = &MapSet{Stem: stem, Paths: make(map[Kind]string)}
			groups[stem] = set
		}
		if kind == KindBaseColor {
			if _, taken := set.Paths[KindBaseColor]; taken {
				continue
			}
		}
		set.Paths[kind] = path
	}

	sets := make([]MapSet, 0, len(groups))
	for _, set := range groups {
		sets = append(sets, *set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Stem < sets[j].Stem })
	return sets, nil
}
