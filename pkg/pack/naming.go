package pack

import (
	"fmt"
	"strings"

	"github.com/bft-labs/d12pack/internal/domain"
)

const (
	// TilePrefix starts every tile filename.
	TilePrefix = "D12"

	// TileExt is the extension of tile and preview files.
	TileExt = ".svg"

	// PreviewFileName is the preview written next to the tiles.
	PreviewFileName = "preview" + TileExt
)

// TileFilename returns the file name for the tile showing a and b in the
// given style, e.g. TileFilename(12, 6, "default") == "D12_06_12_DEFAULT.svg".
// The pair is canonicalized and the style upper-cased, matching how the
// game client builds tile paths.
func TileFilename(a, b int, style string) string {
	k := domain.Canonical(a, b)
	return fmt.Sprintf("%s_%02d_%02d_%s%s", TilePrefix, k.Lo, k.Hi, normalizeStyle(style), TileExt)
}

// TileFormat returns the filename template recorded in pack.json,
// e.g. "D12_AA_BB_DEFAULT.svg".
func TileFormat(style string) string {
	return fmt.Sprintf("%s_AA_BB_%s%s", TilePrefix, normalizeStyle(style), TileExt)
}

func normalizeStyle(style string) string {
	return strings.ToUpper(strings.TrimSpace(style))
}
