package grid

import "strings"

// Grid is a read-only 2-D cell matrix as produced by a spreadsheet loader.
// Rows may have differing lengths; absent cells read as the empty string.
// A Grid is never mutated by any extractor.
type Grid [][]string

// Cell returns the trimmed value at (row, col), or "" when the coordinate
// falls outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// NumRows returns the number of rows in the grid.
func (g Grid) NumRows() int { return len(g) }

// RowLen returns the length of row, or 0 when row is out of range.
func (g Grid) RowLen(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}
