package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Preset adjusts the defaults before any file or environment overlay.
type Preset func(*Config)

// Load loads and validates the game configuration.
// Search order: customPath -> ~/.nrow/config.yaml -> ~/.nrow/config.toml ->
// ./configs/nrow.yaml -> embedded default. NROW_* environment variables are
// applied last in every case.
func Load(customPath string, preset Preset) (Config, error) {
	cfg := Defaults()
	if preset != nil {
		preset(&cfg)
	}

	// Try custom path first
	if customPath != "" {
		if err := cleanenv.ReadConfig(customPath, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		overlay := cfg
		if err := cleanenv.ReadConfig(path, &overlay); err != nil {
			// Broken user files fall through to the next candidate, like a missing one.
			continue
		}
		return overlay, overlay.Validate()
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to read environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Defaults returns the embedded default configuration, falling back to the
// hardcoded DefaultConfig if the embedded document cannot be parsed.
func Defaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 3)
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return append(paths, filepath.Join("configs", "nrow.yaml"))
}

// userConfigDir returns ~/.nrow, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nrow")
}
