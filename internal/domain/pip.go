package domain

const (
	// MinPip is the lowest pip count on a tile half (a blank).
	MinPip = 0

	// MaxPip is the highest pip count of a double-twelve set.
	MaxPip = 12
)

// ClampPip forces n into [MinPip, MaxPip].
// Out-of-range counts are clamped silently, never rejected.
func ClampPip(n int) int {
	if n < MinPip {
		return MinPip
	}
	if n > MaxPip {
		return MaxPip
	}
	return n
}
