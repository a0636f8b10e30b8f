package fs

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

func TestFileWriterReplacesContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	w := NewFileWriter()
	require.NoError(t, w.EnsureDir(dir))

	path := filepath.Join(dir, "tile.svg")
	require.NoError(t, w.WriteFile(path, []byte("first")))
	require.NoError(t, w.WriteFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileWriterMissingDirFails(t *testing.T) {
	w := NewFileWriter()
	err := w.WriteFile(filepath.Join(t.TempDir(), "missing", "tile.svg"), []byte("x"))
	assert.Error(t, err)
}

func TestManifestCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "packs", "default")
	repo := NewManifestFileRepository(dir)

	m := domain.Manifest{ID: "default", Name: "Default", StyleTag: "DEFAULT", MaxPip: 12}
	created, err := repo.CreateIfAbsent(ctx, m)
	require.NoError(t, err)
	assert.True(t, created)

	first, err := os.ReadFile(repo.Path())
	require.NoError(t, err)

	other := m
	other.Name = "Changed"
	created, err = repo.CreateIfAbsent(ctx, other)
	require.NoError(t, err)
	assert.False(t, created)

	second, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestManifestLoadMissing(t *testing.T) {
	_, err := NewManifestFileRepository(t.TempDir()).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
}

func TestManifestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte("{nope"), 0o644))

	_, err := NewManifestFileRepository(dir).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidManifest))
}

func TestManifestPath(t *testing.T) {
	repo := NewManifestFileRepository("/tmp/packs/default")
	assert.Equal(t, filepath.Join("/tmp/packs/default", "pack.json"), repo.Path())
}
