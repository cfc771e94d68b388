// Package hint finds logically forced placements for display. It never
// consults the stored solution, so its suggestions hold for any completion
// of the grid.
package hint

import (
	"context"
	"fmt"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/validator"
)

// Singles suggests naked singles: empty cells with exactly one legal
// candidate.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in scan order, if any.
func (h *Singles) Hint(ctx context.Context, g domain.Grid) (domain.TechniqueHint, bool, error) {
	for i := 0; i < domain.Cells; i++ {
		if ctx.Err() != nil {
			return domain.TechniqueHint{}, false, ctx.Err()
		}
		if g[i] != 0 {
			continue
		}
		v, ok := soleCandidate(g, i)
		if !ok {
			continue
		}
		return domain.TechniqueHint{
			Message: fmt.Sprintf("r%dc%d: only %d fits here", domain.RowOf(i)+1, domain.ColOf(i)+1, v),
			Index:   i,
			Value:   v,
		}, true, nil
	}
	return domain.TechniqueHint{}, false, nil
}

func soleCandidate(g domain.Grid, i int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if validator.Legal(g, i, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
