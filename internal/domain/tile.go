package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TileKey identifies a tile by its two pip counts with Lo <= Hi.
type TileKey struct {
	Lo int
	Hi int
}

// Canonical orders a pair so the first value is not greater than the second.
// Canonical(a, b) == Canonical(b, a) for every a and b.
func Canonical(a, b int) TileKey {
	if a <= b {
		return TileKey{Lo: a, Hi: b}
	}
	return TileKey{Lo: b, Hi: a}
}

// IsDouble reports whether both halves carry the same count.
func (k TileKey) IsDouble() bool {
	return k.Lo == k.Hi
}

// String returns the key as "lo|hi".
func (k TileKey) String() string {
	return fmt.Sprintf("%d|%d", k.Lo, k.Hi)
}

// ParsePair parses "a,b" (or "a|b") into a canonical, clamped TileKey.
func ParsePair(s string) (TileKey, error) {
	sep := ","
	if strings.Contains(s, "|") {
		sep = "|"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return TileKey{}, fmt.Errorf("%w: %q", ErrInvalidPair, s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TileKey{}, fmt.Errorf("%w: %q: %v", ErrInvalidPair, s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TileKey{}, fmt.Errorf("%w: %q: %v", ErrInvalidPair, s, err)
	}
	return Canonical(ClampPip(a), ClampPip(b)), nil
}

// PairCount returns the number of unordered pairs, doubles included,
// for pip counts 0..maxPip. maxPip is clamped into [MinPip, MaxPip].
func PairCount(maxPip int) int {
	n := ClampPip(maxPip) + 1
	return n * (n + 1) / 2
}

// Pairs enumerates every canonical key for pip counts 0..maxPip in
// lexicographic order: (0,0), (0,1), ... (maxPip,maxPip).
func Pairs(maxPip int) []TileKey {
	maxPip = ClampPip(maxPip)
	keys := make([]TileKey, 0, PairCount(maxPip))
	for lo := MinPip; lo <= maxPip; lo++ {
		for hi := lo; hi <= maxPip; hi++ {
			keys = append(keys, TileKey{Lo: lo, Hi: hi})
		}
	}
	return keys
}
