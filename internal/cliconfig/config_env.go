package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds the D12PACK_* environment overrides.
type EnvConfig struct {
	OutDir   string `env:"D12PACK_OUT_DIR"`
	ID       string `env:"D12PACK_ID"`
	Name     string `env:"D12PACK_NAME"`
	StyleTag string `env:"D12PACK_STYLE"`
	Author   string `env:"D12PACK_AUTHOR"`
	License  string `env:"D12PACK_LICENSE"`
	MaxPip   string `env:"D12PACK_MAX_PIP"`
	Preview  string `env:"D12PACK_PREVIEW"`
	LogLevel string `env:"D12PACK_LOG_LEVEL"`
}

// ApplyEnvConfig applies configuration from environment variables (D12PACK_*).
// These override file config but are overridden by flags (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	s := newConfigSetter(changed)

	s.setString("out-dir", ec.OutDir, &cfg.OutDir)
	s.setString("id", ec.ID, &cfg.ID)
	s.setString("name", ec.Name, &cfg.Name)
	s.setString("style", ec.StyleTag, &cfg.StyleTag)
	s.setString("author", ec.Author, &cfg.Author)
	s.setString("license", ec.License, &cfg.License)
	s.setString("preview", ec.Preview, &cfg.Preview)
	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)

	if err := s.setIntFromString("max-pip", ec.MaxPip, &cfg.MaxPip); err != nil {
		return err
	}
	return nil
}
