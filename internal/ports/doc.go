// Package ports defines the interfaces that connect pack assembly to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [FileWriter]: Creates directories and writes generated files
//   - [ManifestRepository]: Loads and creates pack.json
//   - [Logger]: Structured logging abstraction
//
// Package pack depends only on these interfaces. Adapters in
// internal/adapters implement them against the local file system and
// zerolog, and tests swap in fakes to exercise failure paths.
package ports
