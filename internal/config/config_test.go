package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-reflex/internal/reflex"
)

func TestEmbeddedDefaultsCarryStockConstants(t *testing.T) {
	cfg, err := LoadReflex("")
	if err != nil {
		t.Fatalf("LoadReflex() failed: %v", err)
	}

	if cfg.Session.PresetTicks != 60000 {
		t.Errorf("session preset = %d, want 60000", cfg.Session.PresetTicks)
	}
	if cfg.Clock.TickHz != 1000 {
		t.Errorf("tick_hz = %d, want 1000", cfg.Clock.TickHz)
	}

	wantTiers := reflex.DefaultTiers()
	if len(cfg.Tiers) != len(wantTiers) {
		t.Fatalf("tier count = %d, want %d", len(cfg.Tiers), len(wantTiers))
	}
	for i, tier := range cfg.Tiers {
		if tier != wantTiers[i] {
			t.Errorf("tier %d = %+v, want %+v", i, tier, wantTiers[i])
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
session:
  preset_ticks: 30000
tiers:
  - up_to_score: 0
    round_preset_ticks: 2500
    targets: 3
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadReflex(path)
	if err != nil {
		t.Fatalf("LoadReflex(%s) failed: %v", path, err)
	}

	if cfg.Session.PresetTicks != 30000 {
		t.Errorf("session preset = %d, want 30000", cfg.Session.PresetTicks)
	}
	if len(cfg.Tiers) != 1 || cfg.Tiers[0].RoundPreset != 2500 {
		t.Errorf("tiers = %+v, want single 2500-tick tier", cfg.Tiers)
	}
	// Gaps fall back to defaults
	if cfg.Clock.TickHz != 1000 {
		t.Errorf("tick_hz = %d, want default 1000", cfg.Clock.TickHz)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadReflex("/nonexistent/reflex.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name        string
		preset      DifficultyPreset
		wantPresets []uint16
	}{
		{"normal unchanged", DifficultyNormal, []uint16{5000, 4000, 3000, 2000}},
		{"empty unchanged", DifficultyPreset(""), []uint16{5000, 4000, 3000, 2000}},
		{"easy stretches", DifficultyEasy, []uint16{7500, 6000, 4500, 3000}},
		{"hard shortens", DifficultyHard, []uint16{3750, 3000, 2250, 1500}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultReflexConfig()
			ApplyPreset(&cfg, tc.preset)

			if len(cfg.Tiers) != len(tc.wantPresets) {
				t.Fatalf("tier count = %d, want %d", len(cfg.Tiers), len(tc.wantPresets))
			}
			for i, want := range tc.wantPresets {
				if cfg.Tiers[i].RoundPreset != want {
					t.Errorf("tier %d preset = %d, want %d", i, cfg.Tiers[i].RoundPreset, want)
				}
			}
		})
	}
}

func TestApplyPresetFixedPinsFirstTier(t *testing.T) {
	cfg := DefaultReflexConfig()
	ApplyPreset(&cfg, DifficultyFixed)

	if len(cfg.Tiers) != 1 {
		t.Fatalf("fixed preset should leave one tier, got %d", len(cfg.Tiers))
	}
	if cfg.Tiers[0].UpTo != 0 {
		t.Errorf("fixed tier should be unbounded, UpTo = %d", cfg.Tiers[0].UpTo)
	}
	if cfg.Tiers[0].RoundPreset != 5000 || cfg.Tiers[0].Targets != 1 {
		t.Errorf("fixed tier = %+v, want the original tier 0", cfg.Tiers[0])
	}
}

func TestCoreConversion(t *testing.T) {
	cfg := DefaultReflexConfig()
	cfg.Entropy.SeedA = 0xBEEF

	core := cfg.Core()
	if core.SessionPreset != cfg.Session.PresetTicks {
		t.Error("session preset not carried into core config")
	}
	if core.SeedA != 0xBEEF {
		t.Error("entropy seed not carried into core config")
	}
	if len(core.Tiers) != len(cfg.Tiers) {
		t.Error("tier table not carried into core config")
	}
}
