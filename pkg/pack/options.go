package pack

import (
	"github.com/bft-labs/d12pack/internal/ports"
	"github.com/bft-labs/d12pack/pkg/render"
)

// Option configures optional behavior of a Generator.
type Option func(*options)

// options holds the optional configuration for a Generator.
type options struct {
	logger    ports.Logger
	writer    ports.FileWriter
	manifests ports.ManifestRepository
	renderer  *render.Renderer
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRenderer replaces the renderer built from Config.Theme.
func WithRenderer(r *render.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// withFileWriter swaps the file system writer. Used by tests.
func withFileWriter(w ports.FileWriter) Option {
	return func(o *options) {
		o.writer = w
	}
}

// withManifestRepository swaps the manifest store. Used by tests.
func withManifestRepository(r ports.ManifestRepository) Option {
	return func(o *options) {
		o.manifests = r
	}
}
