package pack

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/d12pack/internal/domain"
)

func generate(t *testing.T) Config {
	t.Helper()
	cfg := testConfig(t)
	g, err := New(cfg)
	require.NoError(t, err)
	_, err = g.Generate(context.Background())
	require.NoError(t, err)
	return cfg
}

func TestVerifyCompletePack(t *testing.T) {
	cfg := generate(t)

	rep, err := Verify(context.Background(), cfg.OutDir)
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Equal(t, 92, rep.Expected, "91 tiles plus preview.svg")
	assert.Equal(t, rep.Expected, rep.Present)
	assert.Equal(t, "DEFAULT", rep.Manifest.StyleTag)
}

func TestVerifyReportsMissingTiles(t *testing.T) {
	cfg := generate(t)
	require.NoError(t, os.Remove(filepath.Join(cfg.OutDir, "D12_03_07_DEFAULT.svg")))
	require.NoError(t, os.Remove(filepath.Join(cfg.OutDir, "preview.svg")))

	rep, err := Verify(context.Background(), cfg.OutDir)
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Equal(t, []string{"D12_03_07_DEFAULT.svg", "preview.svg"}, rep.Missing)
	assert.Equal(t, 90, rep.Present)
}

func TestVerifyWithoutManifest(t *testing.T) {
	_, err := Verify(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
}

func TestVerifyRejectsInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.json"), []byte(`{"id":"x","styleTag":"X","maxPip":40}`), 0o644))

	_, err := Verify(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidManifest))
}
