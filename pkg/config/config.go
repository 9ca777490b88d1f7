// Package config handles loading and saving primer configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/primer/config.yaml
//   - State:  ~/.local/state/primer/ (practice attempt log)
//
// PRIMER_CONFIG overrides the config file path entirely.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for primer.
type Config struct {
	Theme   string `yaml:"theme,omitempty"`    // dark, light or auto
	Plain   bool   `yaml:"plain,omitempty"`    // prefer the line-oriented front end
	Chapter string `yaml:"chapter,omitempty"`  // start directly in this chapter key
	LogPath string `yaml:"log_path,omitempty"` // practice attempt log; empty disables it
	Seed    uint64 `yaml:"seed,omitempty"`     // exercise RNG seed; 0 draws from the clock
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Theme: "auto"}
}

// ValidTheme reports whether name is a recognized theme.
func ValidTheme(name string) bool {
	switch name {
	case "dark", "light", "auto":
		return true
	}
	return false
}

// Dir returns the XDG config directory for primer.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "primer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "primer")
}

// StateDir returns the XDG state directory for primer.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "primer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "primer")
}

// Path returns the full path to config.yaml, honoring PRIMER_CONFIG.
func Path() string {
	if path := os.Getenv("PRIMER_CONFIG"); path != "" {
		return expandHome(path)
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultLogPath returns the default practice attempt log location.
func DefaultLogPath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "attempts.jsonl")
}

// Load reads the config file from Path.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path. A missing file yields the
// defaults without error; a broken file yields the defaults with the error,
// so callers can warn and keep going.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	if !ValidTheme(cfg.Theme) {
		cfg.Theme = "auto"
	}
	cfg.LogPath = expandHome(cfg.LogPath)

	return cfg, nil
}

// Save writes the config to Path.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
