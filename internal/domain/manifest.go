package domain

import (
	"fmt"
	"strings"
)

// Manifest describes a generated pack. It is serialized as pack.json and
// read by the game client to locate tiles and the preview.
//
// Field order matches the on-disk layout.
type Manifest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StyleTag    string `json:"styleTag"`
	Author      string `json:"author"`
	License     string `json:"license"`
	MaxPip      int    `json:"maxPip"`
	TileFormat  string `json:"tileFormat"`
	PreviewTile string `json:"previewTile"`
}

// Validate checks that the manifest can describe a tile set.
func (m Manifest) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidManifest)
	}
	if strings.TrimSpace(m.StyleTag) == "" {
		return fmt.Errorf("%w: styleTag is required", ErrInvalidManifest)
	}
	if m.MaxPip < MinPip || m.MaxPip > MaxPip {
		return fmt.Errorf("%w: maxPip %d out of [%d,%d]", ErrInvalidManifest, m.MaxPip, MinPip, MaxPip)
	}
	return nil
}
