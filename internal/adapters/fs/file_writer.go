package fs

import (
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileWriter implements ports.FileWriter on the local file system.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// EnsureDir creates dir and any missing parents.
func (FileWriter) EnsureDir(dir string) error {
	return os.MkdirAll(dir, dirPerm)
}

// WriteFile replaces path with data atomically.
// Uses atomic write (write to temp file, then rename) so readers never see
// a half-written tile.
func (FileWriter) WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}

	// Atomic rename
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
