// Package config provides YAML-based configuration loading and difficulty
// presets for the reflex game.
package config

import (
	"github.com/vovakirdan/tui-reflex/internal/reflex"
)

// ReflexConfig contains all tunable parameters of the game. The embedded
// defaults reproduce the stock constants: a 60000-tick session and the
// four-tier table {5000,4000,3000,2000} ticks / {1,2,3,4} targets.
type ReflexConfig struct {
	Session SessionConfig `yaml:"session"`
	Tiers   []reflex.Tier `yaml:"tiers"`
	Entropy EntropyConfig `yaml:"entropy"`
	Clock   ClockConfig   `yaml:"clock"`
}

// SessionConfig defines the session countdown.
type SessionConfig struct {
	PresetTicks uint16 `yaml:"preset_ticks"`
}

// EntropyConfig seeds the two entropy registers. Zero values fall back to
// the engine's built-in seeds.
type EntropyConfig struct {
	SeedA uint16 `yaml:"seed_a"`
	SeedB uint16 `yaml:"seed_b"`
}

// ClockConfig defines the engine tick rate used by the drivers.
type ClockConfig struct {
	TickHz int `yaml:"tick_hz"`
}

// Core converts the loaded configuration into an engine config.
func (c ReflexConfig) Core() reflex.Config {
	return reflex.Config{
		SessionPreset: c.Session.PresetTicks,
		Tiers:         c.Tiers,
		SeedA:         c.Entropy.SeedA,
		SeedB:         c.Entropy.SeedB,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// roundPresetScale returns the multiplier applied to every tier's round
// deadline for a preset. Easy stretches the deadlines, hard shortens them.
func roundPresetScale(preset DifficultyPreset) (num, den uint32) {
	switch preset {
	case DifficultyEasy:
		return 3, 2
	case DifficultyHard:
		return 3, 4
	default:
		return 1, 1
	}
}

// ApplyPreset adjusts the tier table for a difficulty preset. The "fixed"
// preset pins the game to the first tier: the deadline and target count
// never progress no matter the score.
func ApplyPreset(cfg *ReflexConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyNormal {
		return
	}

	if preset == DifficultyFixed {
		if len(cfg.Tiers) > 0 {
			first := cfg.Tiers[0]
			first.UpTo = 0
			cfg.Tiers = []reflex.Tier{first}
		}
		return
	}

	num, den := roundPresetScale(preset)
	for i := range cfg.Tiers {
		scaled := uint32(cfg.Tiers[i].RoundPreset) * num / den
		if scaled > 0xFFFF {
			scaled = 0xFFFF
		}
		if scaled == 0 {
			scaled = 1
		}
		cfg.Tiers[i].RoundPreset = uint16(scaled)
	}
}
