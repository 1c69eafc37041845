package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-reflex/internal/reflex"
)

//go:embed defaults/reflex.yaml
var defaultReflexYAML []byte

// DefaultReflexConfig returns the hardcoded default configuration, used as
// the last-resort fallback if the embedded YAML fails to parse.
func DefaultReflexConfig() ReflexConfig {
	return ReflexConfig{
		Session: SessionConfig{
			PresetTicks: reflex.DefaultSessionPreset,
		},
		Tiers: reflex.DefaultTiers(),
		Clock: ClockConfig{
			TickHz: 1000,
		},
	}
}
