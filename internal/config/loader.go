package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigDir is the project-relative config directory.
const LocalConfigDir = "configs"

// LoadBomber loads the BomberBug configuration.
// Search order: customPath -> ~/.bomberbug/configs/bomber.yaml ->
// ./configs/bomber.yaml -> embedded default.
// Only an unreadable or malformed customPath is an error; the other
// locations are skipped when missing or invalid.
func LoadBomber(customPath string) (BomberConfig, error) {
	// Values missing from a file keep their defaults.
	cfg := DefaultBomberConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{
		userConfigPath("bomber.yaml"),
		filepath.Join(LocalConfigDir, "bomber.yaml"),
	} {
		if path == "" {
			continue
		}
		if parsed, ok := tryLoad(path, cfg); ok {
			return parsed, nil
		}
	}

	if err := yaml.Unmarshal(defaultBomberYAML, &cfg); err != nil {
		return DefaultBomberConfig(), nil
	}
	return cfg, nil
}

// tryLoad parses a file over a copy of base.
func tryLoad(path string, base BomberConfig) (BomberConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomberbug", "configs", filename)
}

// DataDir returns ~/.bomberbug, creating nothing.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home dir: %w", err)
	}
	return filepath.Join(home, ".bomberbug"), nil
}
