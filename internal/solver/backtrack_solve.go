package solver

import (
	"context"
	"time"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/ports"
	"github.com/playgrid/sudoku/internal/validator"
)

// Solve completes g, preserving every non-zero input cell. A grid that is
// already inconsistent is not detected up front; the search simply explores
// impossible branches and fails.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		i, ok := firstEmpty(&g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if validator.Legal(g, i, v) {
				g[i] = v
				if dfs() {
					return true
				}
				g[i] = 0
			}
		}
		return false
	}
	if !dfs() {
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrNoSolution
	}
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
