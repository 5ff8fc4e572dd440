package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero contrast", func(p *Params) { p.HeightContrast = 0 }},
		{"negative strength", func(p *Params) { p.NormalStrength = -1 }},
		{"unknown roughness mode", func(p *Params) { p.RoughnessMode = "fractal" }},
		{"roughness value range", func(p *Params) { p.RoughnessValue = 1.5 }},
		{"zero variance radius", func(p *Params) { p.VarianceRadius = 0 }},
		{"unknown metallic mode", func(p *Params) { p.MetallicMode = "magnetic" }},
		{"metallic threshold range", func(p *Params) { p.MetallicThreshold = 2 }},
		{"zero ao radius", func(p *Params) { p.AORadius = 0 }},
		{"glow threshold range", func(p *Params) { p.GlowThreshold = -0.1 }},
		{"unknown tint", func(p *Params) { p.TintMode = "chrome" }},
		{"negative tweak", func(p *Params) { p.RoughnessTweak = -0.5 }},
	}
	for _, c := range cases {
		p := Default()
		c.mutate(&p)
		err := p.Validate()
		if err == nil {
			t.Fatalf("%s: no error", c.name)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: wrong sentinel: %v", c.name, err)
		}
	}
}

func TestPresetLookup(t *testing.T) {
	p, ok := Preset("REFLECTIVE_METAL")
	if !ok {
		t.Fatalf("preset name not case-insensitive")
	}
	if p.MetallicMode != "constant" || p.MetallicValue != 1.0 {
		t.Fatalf("reflective_metal metallic: %s %g", p.MetallicMode, p.MetallicValue)
	}
	if p.RoughnessMode != "variance" {
		t.Fatalf("preset did not adopt variance roughness: %s", p.RoughnessMode)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("preset invalid: %v", err)
	}

	if _, ok := Preset("plasma"); ok {
		t.Fatalf("unknown preset resolved")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range PresetNames() {
		p, ok := Preset(name)
		if !ok {
			t.Fatalf("listed preset %q missing", name)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("preset %q invalid: %v", name, err)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	cfg := Config{
		Preset: "stone",
		Params: Params{AORadius: 3},
	}
	if err := cfg.Resolve(Flags{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// explicit file value beats the preset
	if cfg.Params.AORadius != 3 {
		t.Fatalf("ao_radius = %d, want 3", cfg.Params.AORadius)
	}
	// untouched preset values survive the merge
	if cfg.Params.HeightContrast != 1.4 {
		t.Fatalf("height_contrast = %g, want 1.4", cfg.Params.HeightContrast)
	}
	// unset settings pick up defaults
	if cfg.Target != "skyrim" || cfg.Mode != "full" || cfg.Format != "auto" {
		t.Fatalf("defaults: %s %s %s", cfg.Target, cfg.Mode, cfg.Format)
	}
	if cfg.Workers < 1 {
		t.Fatalf("workers %d", cfg.Workers)
	}
}

func TestResolveFlagOverride(t *testing.T) {
	cfg := Config{Target: "authoring", Workers: 2}
	err := cfg.Resolve(Flags{Target: "speedtree", Workers: 8, OutputDir: "out"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Target != "speedtree" || cfg.Workers != 8 || cfg.OutputDir != "out" {
		t.Fatalf("flags lost: %s %d %s", cfg.Target, cfg.Workers, cfg.OutputDir)
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	cfg := Config{Preset: "adamantium"}
	err := cfg.Resolve(Flags{})
	if err == nil || !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("unknown preset: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pbrgen.json")
	body := `{
		"target": "authoring",
		"preset": "wood",
		"params": {"normal_strength": 3.5, "complex_mask": true}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Resolve(Flags{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Target != "authoring" {
		t.Fatalf("target %s", cfg.Target)
	}
	if cfg.Params.NormalStrength != 3.5 {
		t.Fatalf("normal_strength %g", cfg.Params.NormalStrength)
	}
	if !cfg.Params.ComplexMask {
		t.Fatalf("complex_mask lost")
	}
	// wood preset leaks through where the file is silent
	if cfg.Params.RoughnessGain != 1.4 {
		t.Fatalf("roughness_gain %g", cfg.Params.RoughnessGain)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file should error")
	}
}
