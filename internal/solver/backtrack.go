package solver

import (
	"errors"

	"github.com/playgrid/sudoku/internal/domain"
)

// ErrNoSolution is returned when the search exhausts every branch (or the
// context is canceled first). Callers are expected to recover from it.
var ErrNoSolution = errors.New("no solution")

// Backtracking is a straightforward recursive depth-first solver. Empty
// cells are filled in fixed lowest-index-first order with candidates tried
// 1..9 ascending, so for a grid with several completions it always returns
// the same one.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// firstEmpty returns the lowest empty index, or false if the grid is full.
func firstEmpty(g *domain.Grid) (int, bool) {
	for i, v := range g {
		if v == 0 {
			return i, true
		}
	}
	return 0, false
}
