// Package config provides configuration management for grind. It handles
// loading and saving user preferences, currently the preferred profiling
// engine binary.
//
// Configuration is stored in JSON format at ~/.grind.json. A missing file
// yields an empty configuration so grind works with sensible defaults when
// nothing was ever configured: the engine is then resolved from PATH.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds user preferences for the profiling engine.
type Config struct {
	// Engine is the preferred engine binary, either a bare name resolved
	// through PATH or an absolute path. Empty means "use the default".
	Engine string `json:"engine,omitempty"`
}

// Path returns the absolute path to the grind configuration file (~/.grind.json).
func Path() string {
	home := os.Getenv("HOME")
	if home == "" {
		if wd, _ := os.Getwd(); wd != "" {
			return filepath.Join(wd, ".grind.json")
		}
	}
	return filepath.Join(home, ".grind.json")
}

// Load reads configuration from disk. If missing, returns an empty config and nil error.
func Load() (*Config, error) {
	var cfg Config
	p := Path()
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return &Config{}, nil // treat parse issues as empty config (non-fatal)
	}
	return &cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	p := Path()
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
