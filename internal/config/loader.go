package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadReflex loads the game configuration.
// Search order: customPath -> ~/.reflex/configs/reflex.yaml ->
// ./configs/reflex.yaml -> embedded default.
func LoadReflex(customPath string) (ReflexConfig, error) {
	var cfg ReflexConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalized(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("reflex.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalized(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/reflex.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalized(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultReflexYAML, &cfg); err != nil {
		return DefaultReflexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalized(cfg), nil
}

// normalized fills gaps a partial config file may leave.
func normalized(cfg ReflexConfig) ReflexConfig {
	def := DefaultReflexConfig()
	if cfg.Session.PresetTicks == 0 {
		cfg.Session.PresetTicks = def.Session.PresetTicks
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = def.Tiers
	}
	if cfg.Clock.TickHz <= 0 {
		cfg.Clock.TickHz = def.Clock.TickHz
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reflex", "configs", filename)
}
