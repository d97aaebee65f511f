// Package config loads persistent client settings from
// ~/.docfusion/config.yaml. Environment variables and flags override it.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds persistent client settings.
type Config struct {
	BackendURL string `yaml:"backend_url,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
}

const fileName = "config.yaml"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BackendURL: "http://localhost:8000",
		Theme:      "dark",
	}
}

// Dir returns the profile directory (~/.docfusion), which also holds the
// bearer token and the log file.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".docfusion")
}

// Load reads <dir>/config.yaml, falling back to defaults when the file is
// absent or malformed.
func Load(dir string) *Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Save writes cfg to <dir>/config.yaml, creating the directory if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName), data, 0o644)
}

// TokenPath returns the bearer token file path inside dir.
func TokenPath(dir string) string {
	return filepath.Join(dir, "token")
}
