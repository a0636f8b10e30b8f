package ports

import (
	"context"

	"github.com/bft-labs/d12pack/internal/domain"
)

// ManifestRepository handles pack.json persistence.
type ManifestRepository interface {
	// Load reads the manifest.
	// Returns domain.ErrManifestNotFound if none exists.
	Load(ctx context.Context) (domain.Manifest, error)

	// CreateIfAbsent writes m only when no manifest exists yet.
	// It reports whether a new file was created; an existing manifest
	// is left untouched and is not an error.
	CreateIfAbsent(ctx context.Context, m domain.Manifest) (bool, error)

	// Path returns the manifest location.
	Path() string
}
