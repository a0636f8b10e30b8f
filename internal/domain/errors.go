package domain

import "errors"

// Domain errors represent error conditions in the d12pack domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("d12pack: invalid configuration")

	// ErrManifestNotFound is returned when a pack directory has no pack.json.
	ErrManifestNotFound = errors.New("d12pack: manifest not found")

	// ErrInvalidManifest is returned when pack.json cannot describe a tile set.
	ErrInvalidManifest = errors.New("d12pack: invalid manifest")

	// ErrInvalidPair is returned when a pip pair string cannot be parsed.
	ErrInvalidPair = errors.New("d12pack: invalid pip pair")
)
