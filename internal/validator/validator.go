// Package validator holds the pure constraint checks shared by the solver,
// the carver oracle, and play-time conflict highlighting.
package validator

import "github.com/playgrid/sudoku/internal/domain"

// Legal reports whether value v could be written at index i without
// duplicating v in i's row, column, or block. Cells equal to i itself are
// ignored, so Legal can be asked about an already-filled cell.
func Legal(g domain.Grid, i int, v uint8) bool {
	if v == 0 {
		return true
	}
	r, c := domain.RowOf(i), domain.ColOf(i)
	for k := 0; k < domain.Size; k++ {
		ri := domain.Index(r, k)
		ci := domain.Index(k, c)
		if ri != i && g[ri] == v {
			return false
		}
		if ci != i && g[ci] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			bi := domain.Index(br+dr, bc+dc)
			if bi != i && g[bi] == v {
				return false
			}
		}
	}
	return true
}

// Conflicts recomputes, from the grid alone, every cell whose value occurs
// more than once in at least one of its units. Both sides of a duplicate
// pair are reported. The result is sorted by index and rebuilt from scratch
// on every call; nothing is patched incrementally.
func Conflicts(g domain.Grid) []int {
	var bad [domain.Cells]bool

	// For each unit, first pass collects values seen twice, second pass
	// flags every cell carrying such a value.
	markUnit := func(cells [domain.Size]int) {
		var seen, dup uint16
		for _, i := range cells {
			v := g[i]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			if seen&bit != 0 {
				dup |= bit
			}
			seen |= bit
		}
		if dup == 0 {
			return
		}
		for _, i := range cells {
			if v := g[i]; v != 0 && dup&(uint16(1)<<v) != 0 {
				bad[i] = true
			}
		}
	}

	var unit [domain.Size]int
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			unit[c] = domain.Index(r, c)
		}
		markUnit(unit)
	}
	for c := 0; c < domain.Size; c++ {
		for r := 0; r < domain.Size; r++ {
			unit[r] = domain.Index(r, c)
		}
		markUnit(unit)
	}
	for b := 0; b < domain.Size; b++ {
		br, bc := (b/3)*3, (b%3)*3
		n := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				unit[n] = domain.Index(br+dr, bc+dc)
				n++
			}
		}
		markUnit(unit)
	}

	out := make([]int, 0, 8)
	for i, b := range bad {
		if b {
			out = append(out, i)
		}
	}
	return out
}
