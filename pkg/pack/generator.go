package pack

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bft-labs/d12pack/internal/adapters/fs"
	"github.com/bft-labs/d12pack/internal/domain"
	"github.com/bft-labs/d12pack/internal/ports"
	"github.com/bft-labs/d12pack/pkg/log"
	"github.com/bft-labs/d12pack/pkg/render"
)

// Result summarizes a Generate run.
type Result struct {
	OutDir          string
	Tiles           int
	ManifestCreated bool
	ManifestPath    string
	PreviewPath     string
}

// Generator writes a tile pack to disk.
type Generator struct {
	cfg       Config
	logger    ports.Logger
	writer    ports.FileWriter
	manifests ports.ManifestRepository
	renderer  *render.Renderer
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.writer == nil {
		o.writer = fs.NewFileWriter()
	}
	if o.manifests == nil {
		o.manifests = fs.NewManifestFileRepository(cfg.OutDir)
	}
	if o.renderer == nil {
		o.renderer = render.New(cfg.Theme)
	}

	return &Generator{
		cfg:       cfg,
		logger:    o.logger.With(log.String("pack", cfg.ID)),
		writer:    o.writer,
		manifests: o.manifests,
		renderer:  o.renderer,
	}, nil
}

// Config returns the validated configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate writes the manifest (if absent), every tile and the preview.
// The first failure aborts the run; tiles written before it stay on disk.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	res := Result{
		OutDir:       g.cfg.OutDir,
		ManifestPath: g.manifests.Path(),
		PreviewPath:  filepath.Join(g.cfg.OutDir, PreviewFileName),
	}

	if err := g.writer.EnsureDir(g.cfg.OutDir); err != nil {
		return res, fmt.Errorf("create out dir %s: %w", g.cfg.OutDir, err)
	}

	created, err := g.manifests.CreateIfAbsent(ctx, g.cfg.Manifest())
	if err != nil {
		return res, fmt.Errorf("write manifest: %w", err)
	}
	res.ManifestCreated = created
	if created {
		g.logger.Info("manifest created", log.String("path", res.ManifestPath))
	} else {
		g.logger.Debug("manifest exists, leaving it untouched", log.String("path", res.ManifestPath))
	}

	for _, key := range domain.Pairs(g.cfg.MaxPip) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name := TileFilename(key.Lo, key.Hi, g.cfg.StyleTag)
		if err := g.writeTile(key, filepath.Join(g.cfg.OutDir, name)); err != nil {
			return res, fmt.Errorf("write tile %s: %w", name, err)
		}
		res.Tiles++
		g.logger.Debug("tile written", log.String("file", name))
	}

	if err := g.writeTile(g.cfg.Preview, res.PreviewPath); err != nil {
		return res, fmt.Errorf("write preview: %w", err)
	}
	g.logger.Debug("preview written", log.String("path", res.PreviewPath), log.String("pair", g.cfg.Preview.String()))

	return res, nil
}

func (g *Generator) writeTile(key TileKey, path string) error {
	key = domain.Canonical(key.Lo, key.Hi)
	svg, err := g.renderer.Render(key.Lo, key.Hi)
	if err != nil {
		return err
	}
	return g.writer.WriteFile(path, svg)
}
