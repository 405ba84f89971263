package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, variant := range []string{VariantClassic, VariantCompact} {
		t.Run(variant, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal(defaultYAML(variant), &cfg); err != nil {
				t.Fatalf("embedded %s YAML failed to parse: %v", variant, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("embedded %s config invalid: %v", variant, err)
			}
		})
	}
}

func TestClassicDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML(VariantClassic), &cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Default()
	if cfg.Canvas != want.Canvas {
		t.Errorf("canvas mismatch: yaml %+v, hardcoded %+v", cfg.Canvas, want.Canvas)
	}
	if cfg.Frog != want.Frog {
		t.Errorf("frog mismatch: yaml %+v, hardcoded %+v", cfg.Frog, want.Frog)
	}
	if cfg.Policies != want.Policies {
		t.Errorf("policies mismatch: yaml %+v, hardcoded %+v", cfg.Policies, want.Policies)
	}
	if len(cfg.Cars) != len(want.Cars) || len(cfg.Logs) != len(want.Logs) {
		t.Errorf("lane counts mismatch: yaml %d/%d, hardcoded %d/%d",
			len(cfg.Cars), len(cfg.Logs), len(want.Cars), len(want.Logs))
	}
}

func TestVariantPolicies(t *testing.T) {
	classic, err := Load(VariantClassic, "")
	if err != nil {
		t.Fatalf("Load(classic): %v", err)
	}
	if classic.Policies.InclusiveOverlap || classic.Policies.Wrap != WrapGradual ||
		classic.Policies.Collision != CollidePostAdvance || !classic.Policies.Restart {
		t.Errorf("classic policies unexpected: %+v", classic.Policies)
	}
	if classic.Canvas.Height != 800 {
		t.Errorf("classic canvas height = %d, expected 800", classic.Canvas.Height)
	}

	compact, err := Load(VariantCompact, "")
	if err != nil {
		t.Fatalf("Load(compact): %v", err)
	}
	if !compact.Policies.InclusiveOverlap || compact.Policies.Wrap != WrapSnap ||
		compact.Policies.Collision != CollidePreAdvance || compact.Policies.Restart {
		t.Errorf("compact policies unexpected: %+v", compact.Policies)
	}
	if compact.Canvas.Height != 780 {
		t.Errorf("compact canvas height = %d, expected 780", compact.Canvas.Height)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	cfg := Default()
	cfg.Frog.Step = 40
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(VariantClassic, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Frog.Step != 40 {
		t.Errorf("custom config not applied, step = %d", loaded.Frog.Step)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(VariantClassic, "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing custom path")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [not a map]"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(VariantClassic, bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero canvas", func(c *Config) { c.Canvas.Width = 0 }},
		{"zero tick", func(c *Config) { c.Tick.IntervalMS = 0 }},
		{"zero step", func(c *Config) { c.Frog.Step = 0 }},
		{"frog outside canvas", func(c *Config) { c.Frog.StartX = 10000 }},
		{"inverted water band", func(c *Config) { c.Water.Top, c.Water.Bottom = c.Water.Bottom, c.Water.Top }},
		{"water band outside canvas", func(c *Config) { c.Water.Bottom = c.Canvas.Height + 1 }},
		{"empty goal", func(c *Config) { c.Goal.Height = 0 }},
		{"empty car rect", func(c *Config) { c.Cars[0].Width = 0 }},
		{"empty log rect", func(c *Config) { c.Logs[0].Height = 0 }},
		{"unknown wrap policy", func(c *Config) { c.Policies.Wrap = "teleport" }},
		{"unknown collision policy", func(c *Config) { c.Policies.Collision = "maybe" }},
	}

	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	good := Default()
	if err := good.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestBandContains(t *testing.T) {
	b := Band{Top: 100, Bottom: 400}

	tests := []struct {
		name     string
		y, h     int
		expected bool
	}{
		{"fully inside", 200, 40, true},
		{"fully above", 0, 40, false},
		{"fully below", 400, 40, false},
		{"straddling top", 80, 40, true},
		{"straddling bottom", 380, 40, true},
		{"touching top from above", 60, 40, false},
		{"touching bottom from below", 400, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.y, tc.h); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.y, tc.h, got, tc.expected)
			}
		})
	}
}
