package ports

import (
	"context"
	"math/rand"
	"time"

	"github.com/playgrid/sudoku/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a partially filled grid and can test uniqueness.
// Solve preserves every non-zero input cell; failure to complete is an
// ordinary error, never a panic.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator produces a complete, valid, randomized solution grid.
type Generator interface {
	Solved(ctx context.Context, rng *rand.Rand) (domain.Grid, Stats, error)
}

// Carver removes up to removals values from a solved grid while keeping the
// result solvable. Fewer removals than requested is a legitimate outcome.
type Carver interface {
	Carve(ctx context.Context, solved domain.Grid, removals int, rng *rand.Rand) (domain.Grid, Stats, error)
}

// Puzzler runs the whole pipeline: generate a solution, carve it, and wrap
// the pair as a puzzle with identity metadata.
type Puzzler interface {
	Generate(ctx context.Context, removals int, seed int64) (*domain.Puzzle, Stats, error)
}

// Hinter finds the next logically forced placement, if any.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid) (domain.TechniqueHint, bool, error)
}
