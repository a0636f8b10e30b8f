// Package layout maps pip counts to dot positions on a tile half.
//
// Each half is divided into a 3-column by 4-row grid. Cells are numbered
// row-major:
//
//	0  1  2
//	3  4  5
//	6  7  8
//	9 10 11
//
// Counts 0..9 use the classic 3x3 patterns in the top three rows; 10..12
// add cells from the bottom row. [Cells] resolves a count to its [CellSet]
// and [Center] turns a cell index into pixel coordinates within a [Rect].
package layout
