package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/d12pack/internal/domain"
)

// ManifestFileName is the manifest name inside a pack directory.
const ManifestFileName = "pack.json"

// ManifestFileRepository implements ports.ManifestRepository using a JSON file.
type ManifestFileRepository struct {
	dir string
}

// NewManifestFileRepository creates a new ManifestFileRepository for the given directory.
func NewManifestFileRepository(dir string) *ManifestFileRepository {
	return &ManifestFileRepository{dir: dir}
}

// Load reads pack.json from disk.
// Returns domain.ErrManifestNotFound if the file does not exist.
func (r *ManifestFileRepository) Load(ctx context.Context) (domain.Manifest, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, r.Path())
		}
		return domain.Manifest{}, err
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}
	return m, nil
}

// CreateIfAbsent writes m to pack.json unless the file already exists.
// The create is exclusive, so an existing manifest is never truncated.
func (r *ManifestFileRepository) CreateIfAbsent(ctx context.Context, m domain.Manifest) (bool, error) {
	if err := os.MkdirAll(r.dir, dirPerm); err != nil {
		return false, err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return false, err
	}
	data = append(data, '\n')

	f, err := os.OpenFile(r.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(r.Path())
		return false, err
	}
	if err := f.Close(); err != nil {
		os.Remove(r.Path())
		return false, err
	}
	return true, nil
}

// Path returns the full path to the manifest file.
func (r *ManifestFileRepository) Path() string {
	return filepath.Join(r.dir, ManifestFileName)
}
