package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bft-labs/d12pack/internal/domain"
	"github.com/bft-labs/d12pack/pkg/render"
)

// Manifest is the pack.json document.
type Manifest = domain.Manifest

// TileKey is a canonical pip pair.
type TileKey = domain.TileKey

// Defaults for the built-in pack.
const (
	DefaultOutDir  = "packs/default"
	DefaultID      = "default"
	DefaultName    = "Default"
	DefaultAuthor  = "Double 12 Express"
	DefaultLicense = "All rights reserved"
)

// DefaultPreview is the pair rendered to preview.svg.
var DefaultPreview = TileKey{Lo: 6, Hi: 12}

// Config describes the pack to generate.
type Config struct {
	OutDir   string
	ID       string
	Name     string
	StyleTag string
	Author   string
	License  string
	MaxPip   int
	Preview  TileKey
	Theme    render.Theme
}

// DefaultConfig returns the configuration of the built-in DEFAULT pack.
func DefaultConfig() Config {
	return Config{
		OutDir:   filepath.FromSlash(DefaultOutDir),
		ID:       DefaultID,
		Name:     DefaultName,
		StyleTag: render.DefaultStyleTag,
		Author:   DefaultAuthor,
		License:  DefaultLicense,
		MaxPip:   domain.MaxPip,
		Preview:  DefaultPreview,
		Theme:    render.DefaultTheme(),
	}
}

// Validate checks the configuration for errors and normalizes the style
// tag and preview pair.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("%w: out dir is required", domain.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: pack id is required", domain.ErrInvalidConfig)
	}
	c.StyleTag = normalizeStyle(c.StyleTag)
	if c.StyleTag == "" {
		return fmt.Errorf("%w: style tag is required", domain.ErrInvalidConfig)
	}
	if strings.ContainsAny(c.StyleTag, `/\`) {
		return fmt.Errorf("%w: style tag %q must not contain path separators", domain.ErrInvalidConfig, c.StyleTag)
	}
	if c.MaxPip < domain.MinPip || c.MaxPip > domain.MaxPip {
		return fmt.Errorf("%w: max pip %d out of [%d,%d]", domain.ErrInvalidConfig, c.MaxPip, domain.MinPip, domain.MaxPip)
	}
	c.Preview = domain.Canonical(domain.ClampPip(c.Preview.Lo), domain.ClampPip(c.Preview.Hi))
	if err := c.Theme.Validate(); err != nil {
		return err
	}
	return nil
}

// Manifest returns the pack.json document describing c.
func (c Config) Manifest() Manifest {
	return Manifest{
		ID:          c.ID,
		Name:        c.Name,
		StyleTag:    normalizeStyle(c.StyleTag),
		Author:      c.Author,
		License:     c.License,
		MaxPip:      c.MaxPip,
		TileFormat:  TileFormat(c.StyleTag),
		PreviewTile: TileFilename(c.Preview.Lo, c.Preview.Hi, c.StyleTag),
	}
}
