package config

import (
	"errors"
	"fmt"

	"skyrim-pbrgen/internal/derive"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Params holds every tunable of the derivation pipeline. One record
// fully determines the output for a given source image; nothing else
// mutates between calls.
type Params struct {
	HeightContrast float32 `json:"height_contrast"`
	NormalStrength float32 `json:"normal_strength"`

	RoughnessMode  string  `json:"roughness_mode"` // constant | auto | variance
	RoughnessValue float32 `json:"roughness_value"`
	RoughnessGain  float32 `json:"roughness_gain"`
	VarianceRadius int     `json:"variance_radius"`

	MetallicMode      string  `json:"metallic_mode"` // constant | auto
	MetallicValue     float32 `json:"metallic_value"`
	MetallicThreshold float32 `json:"metallic_threshold"`
	MetallicGain      float32 `json:"metallic_gain"`

	AORadius    int     `json:"ao_radius"`
	AOIntensity float32 `json:"ao_intensity"`

	SpecularLevel float32 `json:"specular_level"`

	GlowThreshold float32 `json:"glow_threshold"`
	GlowBinary    bool    `json:"glow_binary"`
	GlowIntensity float32 `json:"glow_intensity"`

	TintMode string `json:"tint_mode"` // default | leaf | skin | armor

	// Look tweaks applied after derivation.
	RoughnessTweak float32 `json:"roughness_tweak"`
	MetallicTweak  float32 `json:"metallic_tweak"`
	AOContrast     float32 `json:"ao_contrast"`
	HeightScale    float32 `json:"height_scale"`

	ComplexMask bool `json:"complex_mask"`
}

// Default returns the parameter set used when neither a preset nor a
// config file overrides anything.
func Default() Params {
	return Params{
		HeightContrast:    1.0,
		NormalStrength:    2.0,
		RoughnessMode:     "auto",
		RoughnessValue:    0.5,
		RoughnessGain:     1.2,
		VarianceRadius:    3,
		MetallicMode:      "constant",
		MetallicValue:     0,
		MetallicThreshold: 220.0 / 255.0,
		MetallicGain:      1.0,
		AORadius:          8,
		AOIntensity:       1.0,
		SpecularLevel:     1.0,
		GlowThreshold:     100.0 / 255.0,
		GlowBinary:        false,
		GlowIntensity:     1.0,
		TintMode:          "default",
		RoughnessTweak:    1.0,
		MetallicTweak:     1.0,
		AOContrast:        1.0,
		HeightScale:       1.0,
	}
}

// Validate rejects parameter combinations the pipeline cannot run.
func (p *Params) Validate() error {
	if p.HeightContrast <= 0 {
		return fmt.Errorf("config: %w: height_contrast %g", ErrInvalidParameter, p.HeightContrast)
	}
	if p.NormalStrength < 0 {
		return fmt.Errorf("config: %w: normal_strength %g", ErrInvalidParameter, p.NormalStrength)
	}
	switch p.RoughnessMode {
	case "constant", "auto", "variance":
	default:
		return fmt.Errorf("config: %w: roughness_mode %q", ErrInvalidParameter, p.RoughnessMode)
	}
	if p.RoughnessValue < 0 || p.RoughnessValue > 1 {
		return fmt.Errorf("config: %w: roughness_value %g", ErrInvalidParameter, p.RoughnessValue)
	}
	if p.RoughnessGain < 0 {
		return fmt.Errorf("config: %w: roughness_gain %g", ErrInvalidParameter, p.RoughnessGain)
	}
	if p.VarianceRadius < 1 {
		return fmt.Errorf("config: %w: variance_radius %d", ErrInvalidParameter, p.VarianceRadius)
	}
	switch p.MetallicMode {
	case "constant", "auto":
	default:
		return fmt.Errorf("config: %w: metallic_mode %q", ErrInvalidParameter, p.MetallicMode)
	}
	if p.MetallicValue < 0 || p.MetallicValue > 1 {
		return fmt.Errorf("config: %w: metallic_value %g", ErrInvalidParameter, p.MetallicValue)
	}
	if p.MetallicThreshold < 0 || p.MetallicThreshold > 1 {
		return fmt.Errorf("config: %w: metallic_threshold %g", ErrInvalidParameter, p.MetallicThreshold)
	}
	if p.MetallicGain < 0 {
		return fmt.Errorf("config: %w: metallic_gain %g", ErrInvalidParameter, p.MetallicGain)
	}
	if p.AORadius < 1 {
		return fmt.Errorf("config: %w: ao_radius %d", ErrInvalidParameter, p.AORadius)
	}
	if p.AOIntensity < 0 {
		return fmt.Errorf("config: %w: ao_intensity %g", ErrInvalidParameter, p.AOIntensity)
	}
	if p.SpecularLevel < 0 {
		return fmt.Errorf("config: %w: specular_level %g", ErrInvalidParameter, p.SpecularLevel)
	}
	if p.GlowThreshold < 0 || p.GlowThreshold > 1 {
		return fmt.Errorf("config: %w: glow_threshold %g", ErrInvalidParameter, p.GlowThreshold)
	}
	if p.GlowIntensity < 0 {
		return fmt.Errorf("config: %w: glow_intensity %g", ErrInvalidParameter, p.GlowIntensity)
	}
	if _, err := derive.ParseTintMode(p.TintMode); err != nil {
		return fmt.Errorf("config: %w: tint_mode %q", ErrInvalidParameter, p.TintMode)
	}
	if p.RoughnessTweak < 0 {
		return fmt.Errorf("config: %w: roughness_tweak %g", ErrInvalidParameter, p.RoughnessTweak)
	}
	if p.MetallicTweak < 0 {
		return fmt.Errorf("config: %w: metallic_tweak %g", ErrInvalidParameter, p.MetallicTweak)
	}
	if p.AOContrast < 0 {
		return fmt.Errorf("config: %w: ao_contrast %g", ErrInvalidParameter, p.AOContrast)
	}
	if p.HeightScale < 0 {
		return fmt.Errorf("config: %w: height_scale %g", ErrInvalidParameter, p.HeightScale)
	}
	return nil
}
