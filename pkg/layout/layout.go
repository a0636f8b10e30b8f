package layout

import (
	"math/bits"

	"github.com/bft-labs/d12pack/internal/domain"
)

const (
	// Cols is the number of grid columns per half.
	Cols = 3
	// Rows is the number of grid rows per half.
	Rows = 4
	// NumCells is the number of addressable cells per half.
	NumCells = Cols * Rows
)

// CellSet is a bit set of grid cell indices in [0, NumCells).
type CellSet uint16

// NewCellSet returns a set holding the given indices.
// Indices outside [0, NumCells) are ignored.
func NewCellSet(indices ...int) CellSet {
	var s CellSet
	return s.Add(indices...)
}

// Add returns s with the given indices set.
func (s CellSet) Add(indices ...int) CellSet {
	for _, i := range indices {
		if i >= 0 && i < NumCells {
			s |= 1 << uint(i)
		}
	}
	return s
}

// Union returns the cells present in s or o.
func (s CellSet) Union(o CellSet) CellSet {
	return s | o
}

// Has reports whether cell i is set.
func (s CellSet) Has(i int) bool {
	if i < 0 || i >= NumCells {
		return false
	}
	return s&(1<<uint(i)) != 0
}

// Len returns the number of cells set.
func (s CellSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Indices returns the set cells in ascending order.
func (s CellSet) Indices() []int {
	out := make([]int, 0, s.Len())
	for i := 0; i < NumCells; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// 3x3 patterns for 0..9, top three rows only.
var base = [10]CellSet{
	0: NewCellSet(),
	1: NewCellSet(4),
	2: NewCellSet(0, 8),
	3: NewCellSet(0, 4, 8),
	4: NewCellSet(0, 2, 6, 8),
	5: NewCellSet(0, 2, 4, 6, 8),
	6: NewCellSet(0, 2, 3, 5, 6, 8),
	7: NewCellSet(0, 2, 3, 4, 5, 6, 8),
	8: NewCellSet(0, 1, 2, 3, 5, 6, 7, 8),
	9: NewCellSet(0, 1, 2, 3, 4, 5, 6, 7, 8),
}

// Bottom-row extensions applied on top of the 9 pattern.
var extra = map[int]CellSet{
	10: NewCellSet(10),
	11: NewCellSet(9, 11),
	12: NewCellSet(9, 10, 11),
}

// Cells returns the grid cells to fill for a pip count.
// n is clamped into [0, 12] first; the result is always defined.
func Cells(n int) CellSet {
	c := domain.ClampPip(n)
	return base[min(c, 9)].Union(extra[c])
}

// Point is a pixel position.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Center returns the pixel center of cell idx when the grid is stretched
// over r.
func Center(idx int, r Rect) Point {
	col := idx % Cols
	row := idx / Cols
	return Point{
		X: r.X + (float64(col)+0.5)*(r.W/Cols),
		Y: r.Y + (float64(row)+0.5)*(r.H/Rows),
	}
}

// Centers returns the pixel centers for every cell of n, in index order.
func Centers(n int, r Rect) []Point {
	idx := Cells(n).Indices()
	out := make([]Point, 0, len(idx))
	for _, i := range idx {
		out = append(out, Center(i, r))
	}
	return out
}
