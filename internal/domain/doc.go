// Package domain contains the core value objects for d12pack.
//
// This package has no dependencies on infrastructure concerns (file system,
// logging, rendering) and contains only the pip and tile rules every other
// layer builds on.
//
// # Values
//
//   - Pip counts: integers in [MinPip, MaxPip], clamped by [ClampPip]
//   - [TileKey]: an unordered pair of pip counts in canonical (Lo <= Hi) form
//
// [Pairs] enumerates every canonical key of a set, doubles included.
package domain
