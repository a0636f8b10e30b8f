package pack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/d12pack/internal/adapters/fs"
	"github.com/bft-labs/d12pack/internal/domain"
)

// Report is the outcome of Verify.
type Report struct {
	Manifest Manifest
	Expected int
	Present  int
	Missing  []string
}

// OK reports whether every expected file exists.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Verify checks that dir holds every tile its pack.json promises, plus the
// preview tile and preview.svg.
func Verify(ctx context.Context, dir string) (Report, error) {
	m, err := fs.NewManifestFileRepository(dir).Load(ctx)
	if err != nil {
		return Report{}, err
	}
	if err := m.Validate(); err != nil {
		return Report{}, err
	}

	rep := Report{Manifest: m}
	check := func(name string) error {
		rep.Expected++
		_, err := os.Stat(filepath.Join(dir, name))
		switch {
		case err == nil:
			rep.Present++
		case errors.Is(err, os.ErrNotExist):
			rep.Missing = append(rep.Missing, name)
		default:
			return fmt.Errorf("stat %s: %w", name, err)
		}
		return nil
	}

	expected := make(map[string]bool, domain.PairCount(m.MaxPip))
	for _, key := range domain.Pairs(m.MaxPip) {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		name := TileFilename(key.Lo, key.Hi, m.StyleTag)
		expected[name] = true
		if err := check(name); err != nil {
			return rep, err
		}
	}
	if m.PreviewTile != "" && !expected[m.PreviewTile] {
		if err := check(m.PreviewTile); err != nil {
			return rep, err
		}
	}
	if err := check(PreviewFileName); err != nil {
		return rep, err
	}
	return rep, nil
}
