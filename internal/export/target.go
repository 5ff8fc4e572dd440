package export

import (
	"fmt"
	"strings"
)

// Target selects the consuming toolchain and with it the suffix
// table, container format and packing policy.
type Target int

const (
	TargetSkyrim Target = iota
	TargetAuthoring
	TargetSpeedTree
)

func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "skyrim":
		return TargetSkyrim, nil
	case "authoring":
		return TargetAuthoring, nil
	case "speedtree":
		return TargetSpeedTree, nil
	}
	return 0, fmt.Errorf("export: unknown target %q", s)
}

func (t Target) String() string {
	switch t {
	case TargetSkyrim:
		return "skyrim"
	case TargetAuthoring:
		return "authoring"
	case TargetSpeedTree:
		return "speedtree"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// MapKind names one derivable output map.
type MapKind int

const (
	MapBase MapKind = iota
	MapNormal
	MapHeight
	MapPacked
	MapComplex
	MapGlow
	MapRough
	MapGloss
	MapMetal
	MapAO
	MapSpec
	MapSubsurfaceTint
	MapSubsurfacePercent
)

// profile is the per-target configuration record. A map kind missing
// from the suffix table is not emitted for that target.
type profile struct {
	suffix      map[MapKind]string
	separates   []MapKind
	packs       bool
	edgeBleed   bool
	compressed  bool
	heightAlpha bool
}

var profiles = map[Target]profile{
	TargetSkyrim: {
		suffix: map[MapKind]string{
			MapBase:              "",
			MapNormal:            "_n",
			MapHeight:            "_p",
			MapPacked:            "_rmaos",
			MapComplex:           "_m",
			MapGlow:              "_g",
			MapRough:             "_rough",
			MapMetal:             "_metal",
			MapAO:                "_ao",
			MapSpec:              "_spec",
			MapSubsurfaceTint:    "_s",
			MapSubsurfacePercent: "_SubsurfacePercent",
		},
		separates:  []MapKind{MapRough, MapMetal, MapAO, MapSpec},
		packs:      true,
		compressed: true,
	},
	TargetAuthoring: {
		suffix: map[MapKind]string{
			MapBase:              "_BaseColor",
			MapNormal:            "_Normal",
			MapHeight:            "_Height",
			MapPacked:            "_RMAOS",
			MapComplex:           "_M",
			MapGlow:              "_Emissive",
			MapRough:             "_Roughness",
			MapMetal:             "_Metallic",
			MapAO:                "_AO",
			MapSubsurfacePercent: "_Subsurface",
		},
		separates:   []MapKind{MapRough, MapMetal, MapAO},
		packs:       true,
		edgeBleed:   true,
		heightAlpha: true,
	},
	TargetSpeedTree: {
		suffix: map[MapKind]string{
			MapBase:              "_Color",
			MapNormal:            "_Normal",
			MapHeight:            "_Height",
			MapGlow:              "_Opacity",
			MapGloss:             "_Gloss",
			MapMetal:             "_Metallic",
			MapAO:                "_AO",
			MapSubsurfacePercent: "_SubsurfacePercent",
		},
		separates: []MapKind{MapGloss, MapMetal, MapAO},
		edgeBleed: true,
	},
}
