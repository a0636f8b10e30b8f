package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bft-labs/d12pack/internal/domain"
	"github.com/bft-labs/d12pack/pkg/pack"
	"github.com/bft-labs/d12pack/pkg/render"
)

// DefaultConfigFile is looked up in the working directory when --config
// is not given.
const DefaultConfigFile = "d12pack.toml"

// Config holds CLI configuration for d12pack.
type Config struct {
	OutDir   string
	ID       string
	Name     string
	StyleTag string
	Author   string
	License  string
	MaxPip   int
	Preview  string
	LogLevel string

	Theme render.Theme
}

// DefaultConfig returns a Config that generates the built-in DEFAULT pack.
func DefaultConfig() Config {
	p := pack.DefaultConfig()
	return Config{
		OutDir:   p.OutDir,
		ID:       p.ID,
		Name:     p.Name,
		StyleTag: p.StyleTag,
		Author:   p.Author,
		License:  p.License,
		MaxPip:   p.MaxPip,
		Preview:  fmt.Sprintf("%d,%d", p.Preview.Lo, p.Preview.Hi),
		LogLevel: "info",
		Theme:    p.Theme,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("%w: out-dir is required", domain.ErrInvalidConfig)
	}
	c.OutDir = filepath.Clean(c.OutDir)

	if c.MaxPip < domain.MinPip || c.MaxPip > domain.MaxPip {
		return fmt.Errorf("%w: max-pip must be within [%d,%d], got %d",
			domain.ErrInvalidConfig, domain.MinPip, domain.MaxPip, c.MaxPip)
	}
	if _, err := domain.ParsePair(c.Preview); err != nil {
		return fmt.Errorf("%w: preview: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// PackConfig converts the CLI configuration into a pack.Config.
func (c Config) PackConfig() (pack.Config, error) {
	preview, err := domain.ParsePair(c.Preview)
	if err != nil {
		return pack.Config{}, fmt.Errorf("%w: preview: %v", domain.ErrInvalidConfig, err)
	}
	p := pack.Config{
		OutDir:   c.OutDir,
		ID:       c.ID,
		Name:     c.Name,
		StyleTag: c.StyleTag,
		Author:   c.Author,
		License:  c.License,
		MaxPip:   c.MaxPip,
		Preview:  preview,
		Theme:    c.Theme,
	}
	if err := p.Validate(); err != nil {
		return pack.Config{}, err
	}
	return p, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero is a meaningful value (max-pip 0 is a set of one blank tile), so
// absence is expressed with nil rather than zero.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
