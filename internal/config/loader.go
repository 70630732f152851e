package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the invader configuration.
// Search order: customPath -> ~/.invader/configs/invader.yaml -> ./configs/invader.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (InvaderConfig, error) {
	cfg := DefaultInvaderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validated(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invader.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validated(cfg, userCfgPath)
			}
			cfg = DefaultInvaderConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invader.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validated(cfg, "configs/invader.yaml")
		}
		cfg = DefaultInvaderConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvaderYAML, &cfg); err != nil {
		return DefaultInvaderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadWithPreset loads the configuration and applies a difficulty preset.
func LoadWithPreset(customPath, difficulty string) (InvaderConfig, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return InvaderConfig{}, err
	}
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	return cfg, nil
}

func validated(cfg InvaderConfig, source string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", source, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invader", "configs", filename)
}
