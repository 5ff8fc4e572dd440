package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and pipeline settings.
type Config struct {
	// Paths
	SourceDir string `json:"source_dir"`
	OutputDir string `json:"output_dir"`

	// Pipeline settings
	Target   string `json:"target"` // skyrim | authoring | speedtree
	Mode     string `json:"mode"`   // full | both | separates
	Preset   string `json:"preset"`
	Format   string `json:"format"` // auto | bc1 | bc3
	SkipMips bool   `json:"skip_mips"`
	Workers  int    `json:"workers"`

	Params Params `json:"params"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in empty fields with defaults and validates the
// result. CLI flags take priority when non-zero/non-empty; explicit
// file parameters override the preset they sit on top of.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.SourceDir != "" {
		c.SourceDir = flags.SourceDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Target != "" {
		c.Target = flags.Target
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Layer explicit parameters over the preset, or over the defaults
	// when no preset is named.
	base := Default()
	if c.Preset != "" {
		p, ok := Preset(c.Preset)
		if !ok {
			return fmt.Errorf("config: %w: preset %q", ErrInvalidParameter, c.Preset)
		}
		base = p
	}
	c.Params = merge(base, c.Params)

	// Defaults for pipeline settings
	if c.SourceDir == "" {
		c.SourceDir = "."
	}
	if c.Target == "" {
		c.Target = "skyrim"
	}
	if c.Mode == "" {
		c.Mode = "full"
	}
	if c.Format == "" {
		c.Format = "auto"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	return c.Params.Validate()
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SourceDir string
	OutputDir string
	Target    string
	Mode      string
	Preset    string
	Format    string
	Workers   int
}

// merge overlays every explicitly set field of over onto base. Zero
// numeric values and empty strings read as "not set", the same rule
// Resolve applies to the pipeline settings. A preset that pins a
// value, like reflective_metal's metallic 1.0, can therefore only be
// overridden with a non-zero value.
func merge(base, over Params) Params {
	out := base
	if over.HeightContrast != 0 {
		out.HeightContrast = over.HeightContrast
	}
	if over.NormalStrength != 0 {
		out.NormalStrength = over.NormalStrength
	}
	if over.RoughnessMode != "" {
		out.RoughnessMode = over.RoughnessMode
	}
	if over.RoughnessValue != 0 {
		out.RoughnessValue = over.RoughnessValue
	}
	if over.RoughnessGain != 0 {
		out.RoughnessGain = over.RoughnessGain
	}
	if over.VarianceRadius != 0 {
		out.VarianceRadius = over.VarianceRadius
	}
	if over.MetallicMode != "" {
		out.MetallicMode = over.MetallicMode
	}
	if over.MetallicValue != 0 {
		out.MetallicValue = over.MetallicValue
	}
	if over.MetallicThreshold != 0 {
		out.MetallicThreshold = over.MetallicThreshold
	}
	if over.MetallicGain != 0 {
		out.MetallicGain = over.MetallicGain
	}
	if over.AORadius != 0 {
		out.AORadius = over.AORadius
	}
	if over.AOIntensity != 0 {
		out.AOIntensity = over.AOIntensity
	}
	if over.SpecularLevel != 0 {
		out.SpecularLevel = over.SpecularLevel
	}
	if over.GlowThreshold != 0 {
		out.GlowThreshold = over.GlowThreshold
	}
	if over.GlowBinary {
		out.GlowBinary = true
	}
	if over.GlowIntensity != 0 {
		out.GlowIntensity = over.GlowIntensity
	}
	if over.TintMode != "" {
		out.TintMode = over.TintMode
	}
	if over.RoughnessTweak != 0 {
		out.RoughnessTweak = over.RoughnessTweak
	}
	if over.MetallicTweak != 0 {
		out.MetallicTweak = over.MetallicTweak
	}
	if over.AOContrast != 0 {
		out.AOContrast = over.AOContrast
	}
	if over.HeightScale != 0 {
		out.HeightScale = over.HeightScale
	}
	if over.ComplexMask {
		out.ComplexMask = true
	}
	return out
}
