package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJail loads the jail run configuration.
// Search order: customPath -> ~/.jailrun/configs/jail.yaml -> ./configs/jail.yaml -> embedded default.
// Files only need the keys they change; everything else keeps its default.
func LoadJail(customPath string) (JailConfig, error) {
	cfg := DefaultJailConfig()
	if err := load("jail", customPath, &cfg); err != nil {
		return DefaultJailConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultJailConfig(), err
	}
	return cfg, nil
}

// LoadClicker loads the tap counter configuration.
// Search order: customPath -> ~/.jailrun/configs/clicker.yaml -> ./configs/clicker.yaml -> embedded default.
func LoadClicker(customPath string) (ClickerConfig, error) {
	cfg := DefaultClickerConfig()
	if err := load("clicker", customPath, &cfg); err != nil {
		return DefaultClickerConfig(), err
	}
	if cfg.Seconds <= 0 {
		return DefaultClickerConfig(), fmt.Errorf("config: clicker seconds must be positive, got %d", cfg.Seconds)
	}
	return cfg, nil
}

// LoadTheories loads the theory rooms.
// Search order: customPath -> ~/.jailrun/configs/theories.yaml -> ./configs/theories.yaml -> embedded default.
func LoadTheories(customPath string) (TheoryConfig, error) {
	var cfg TheoryConfig
	if err := load("theories", customPath, &cfg); err != nil {
		return DefaultTheoryConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTheoryConfig(), err
	}
	return cfg, nil
}

// load decodes the first config found for name into out. A custom path must
// exist and parse; the other locations are skipped when unreadable or invalid.
func load(name, customPath string, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return nil
	}

	filename := name + ".yaml"
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(GetDefaultYAML(name), out); err != nil {
		return fmt.Errorf("config: embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jailrun", "configs", filename)
}
