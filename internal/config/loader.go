package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRooftop loads the rooftop runner configuration.
// Search order: customPath -> ~/.rooftop/configs/rooftop.yaml ->
// ./configs/rooftop.yaml -> embedded default.
func LoadRooftop(customPath string) (RooftopConfig, error) {
	var cfg RooftopConfig

	// A custom path is an explicit request; failure there is an error
	// rather than a fallthrough.
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

	if userCfgPath := userConfigPath("rooftop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/rooftop.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRooftopYAML, &cfg); err != nil {
		return DefaultRooftopConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rooftop", "configs", filename)
}
