package solver

import (
	"context"
	"time"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/ports"
	"github.com/playgrid/sudoku/internal/validator"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
// It is offered to callers as a diagnostic; the carver deliberately does
// not use it (existence, not uniqueness, is the carving oracle).
func (s *Backtracking) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		i, ok := firstEmpty(&g)
		if !ok {
			count++
			return count >= 2
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
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
