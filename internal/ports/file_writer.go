package ports

// FileWriter persists generated pack files.
type FileWriter interface {
	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error

	// WriteFile replaces path with data. The file is closed before
	// WriteFile returns, whether or not the write succeeded.
	WriteFile(path string, data []byte) error
}
