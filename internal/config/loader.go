package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatnip loads the cat game configuration.
// Search order: customPath -> ~/.catnip/configs/catnip.yaml -> ./configs/catnip.yaml -> embedded default
func LoadCatnip(customPath string) (CatnipConfig, error) {
	var cfg CatnipConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catnip.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/catnip.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCatnipYAML, &cfg); err != nil {
		return DefaultCatnipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catnip", "configs", filename)
}

// ApplyTemperamentPreset modifies the config based on a temperament preset.
func ApplyTemperamentPreset(cfg *CatnipConfig, preset TemperamentPreset) {
	if IsFixedPreset(preset) {
		cfg.Temperament.Enabled = false
	} else {
		cfg.Temperament.Enabled = true
		cfg.Temperament.InitialBoldness = InitialBoldnessForPreset(preset)
	}
}
