package domain

import (
	"errors"
	"strings"
)

// Size is the board edge length; Cells is the total cell count.
const (
	Size  = 9
	Cells = Size * Size // 81
)

// Grid holds the 81 cell values of a board, row-major, 0 = empty.
// Cells are addressed by a single index 0..80.
type Grid [Cells]uint8

// RowOf returns the row 0..8 of index i.
func RowOf(i int) int { return i / Size }

// ColOf returns the column 0..8 of index i.
func ColOf(i int) int { return i % Size }

// BlockOf returns the 3x3 block 0..8 of index i.
func BlockOf(i int) int { return (RowOf(i)/3)*3 + ColOf(i)/3 }

// Index maps (row, col) back to a cell index.
func Index(row, col int) int { return row*Size + col }

// ValidIndex reports whether i addresses a cell.
func ValidIndex(i int) bool { return i >= 0 && i < Cells }

// ErrBadGrid is returned by Parse for malformed input.
var ErrBadGrid = errors.New("grid must be 81 cells of 0-9 (or '.' for empty)")

// Parse reads an 81-character grid, row-major. '0' and '.' both mean empty;
// whitespace is ignored so callers can paste formatted boards.
func Parse(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\t' || r == '\r' || r == '|' || r == '-' || r == '+':
			continue
		case r == '.' || r == '0':
			// empty cell
		case r >= '1' && r <= '9':
			if n < Cells {
				g[n] = uint8(r - '0')
			}
		default:
			return Grid{}, ErrBadGrid
		}
		n++
	}
	if n != Cells {
		return Grid{}, ErrBadGrid
	}
	return g, nil
}

// String renders the grid as a flat 81-character line, '.' for empty.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(Cells)
	for _, v := range g {
		if v == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte('0' + v)
		}
	}
	return b.String()
}

// CountEmpty returns the number of zero cells.
func (g Grid) CountEmpty() int {
	n := 0
	for _, v := range g {
		if v == 0 {
			n++
		}
	}
	return n
}

// IsComplete reports whether no cell is empty. It says nothing about
// validity; pair it with the validator for that.
func (g Grid) IsComplete() bool { return g.CountEmpty() == 0 }
