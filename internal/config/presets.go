package config

import (
	"sort"
	"strings"
)

// presets are tuned parameter bundles for common material families.
// Each starts from the shared baseline, which swaps roughness over to
// the variance estimator, and overrides only what the material needs.
var presets = map[string]func(*Params){
	"armor": func(p *Params) {
		p.RoughnessTweak = 0.4
		p.MetallicTweak = 1.8
		p.AOContrast = 1.2
		p.TintMode = "armor"
	},
	"reflective_metal": func(p *Params) {
		p.NormalStrength = 1.2
		p.RoughnessGain = 0.8
		p.VarianceRadius = 2
		p.AORadius = 3
		p.AOIntensity = 0.9
		p.MetallicMode = "constant"
		p.MetallicValue = 1.0
		p.RoughnessTweak = 0.3
		p.MetallicTweak = 2.0
		p.AOContrast = 1.1
		p.HeightScale = 0.7
		p.TintMode = "armor"
	},
	"wood": func(p *Params) {
		p.HeightContrast = 1.2
		p.RoughnessGain = 1.4
		p.VarianceRadius = 4
		p.AOIntensity = 1.2
		p.RoughnessTweak = 1.3
	},
	"stone": func(p *Params) {
		p.HeightContrast = 1.4
		p.NormalStrength = 2.5
		p.AORadius = 10
		p.AOIntensity = 1.4
		p.AOContrast = 1.25
		p.HeightScale = 1.2
	},
	"cloth": func(p *Params) {
		p.NormalStrength = 1.5
		p.RoughnessGain = 1.5
		p.VarianceRadius = 5
		p.AORadius = 6
		p.AOIntensity = 0.9
		p.RoughnessTweak = 1.6
		p.AOContrast = 0.9
	},
	"leather": func(p *Params) {
		p.RoughnessGain = 1.3
		p.AORadius = 6
		p.AOIntensity = 1.1
		p.RoughnessTweak = 1.2
	},
	"skin": func(p *Params) {
		p.HeightContrast = 0.8
		p.NormalStrength = 1.8
		p.AORadius = 4
		p.AOIntensity = 0.8
		p.RoughnessTweak = 0.8
		p.AOContrast = 0.9
		p.HeightScale = 0.9
		p.TintMode = "skin"
	},
	"leaf": func(p *Params) {
		p.HeightContrast = 1.2
		p.NormalStrength = 1.8
		p.RoughnessGain = 0.9
		p.AORadius = 12
		p.AOIntensity = 0.8
		p.RoughnessTweak = 1.2
		p.AOContrast = 0.8
		p.HeightScale = 1.2
		p.TintMode = "leaf"
	},
	"glass": func(p *Params) {
		p.HeightContrast = 0.8
		p.RoughnessGain = 0.8
		p.VarianceRadius = 2
		p.AORadius = 2
		p.AOIntensity = 0.8
		p.RoughnessTweak = 0.5
		p.HeightScale = 0.9
		p.TintMode = "armor"
	},
}

// Preset resolves a named parameter bundle. Names are matched
// case-insensitively.
func Preset(name string) (Params, bool) {
	apply, ok := presets[strings.ToLower(name)]
	if !ok {
		return Params{}, false
	}
	p := Default()
	p.RoughnessMode = "variance"
	apply(&p)
	return p, true
}

// PresetNames lists the available presets for usage text.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
