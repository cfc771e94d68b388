// Package generator produces solved grids and carves playable puzzles out
// of them. Carving checks only that a solution still exists; a carved
// puzzle may admit more than one completion.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/ports"
	"github.com/playgrid/sudoku/internal/validator"
)

// Random fills and carves grids using a caller-supplied rand source, so a
// fixed seed reproduces the same puzzle. The solver is used only as a
// carving oracle.
type Random struct {
	Solver ports.Solver
}

func New(s ports.Solver) *Random { return &Random{Solver: s} }

// Solved fills an empty grid by depth-first search with a fresh random
// permutation of 1..9 at every decision point. The randomized candidate
// order is what makes repeated calls produce different grids. It always
// succeeds for the standard 9x9 constraints unless ctx is canceled.
func (r *Random) Solved(ctx context.Context, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	var g domain.Grid
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	nodes := 0
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		if i == domain.Cells {
			return true
		}
		rng.Shuffle(9, func(a, b int) { nums[a], nums[b] = nums[b], nums[a] })
		order := nums
		for _, v := range order {
			nodes++
			if validator.Legal(g, i, v) {
				g[i] = v
				if dfs(i + 1) {
					return true
				}
				g[i] = 0
			}
		}
		return false
	}
	if !dfs(0) {
		// only reachable through cancellation; an empty grid always fills
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
	}
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Carve removes values from a solved grid at randomized positions, using
// solve as an oracle to reject removals that leave the grid unsolvable.
// It stops once removals cells are gone or every position was tried;
// ending up short of the target is not an error.
func (r *Random) Carve(ctx context.Context, solved domain.Grid, removals int, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	g := solved
	nodes := 0

	positions := rng.Perm(domain.Cells)
	removed := 0
	for _, i := range positions {
		if err := ctx.Err(); err != nil {
			return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if removed >= removals {
			break
		}
		if g[i] == 0 {
			continue
		}
		old := g[i]
		g[i] = 0
		_, st, err := r.Solver.Solve(ctx, g)
		nodes += st.Nodes
		if err != nil {
			g[i] = old // removal made it unsolvable, put it back
			continue
		}
		removed++
	}
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Generate runs the full pipeline: solved grid, then carve, then wrap the
// result with identity metadata.
func (r *Random) Generate(ctx context.Context, removals int, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, st1, err := r.Solved(ctx, rng)
	if err != nil {
		return nil, st1, err
	}
	carved, st2, err := r.Carve(ctx, full, removals, rng)
	if err != nil {
		return nil, st2, err
	}
	p := &domain.Puzzle{
		ID:        uuid.NewString(),
		Seed:      seed,
		Grid:      carved,
		Solution:  full,
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: st1.Nodes + st2.Nodes, Duration: time.Since(start)}, nil
}
