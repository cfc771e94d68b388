package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/solver"
)

// isPermutationUnit checks that a unit holds 1..9 exactly once.
func isPermutationUnit(t *testing.T, g domain.Grid, cells []int) {
	t.Helper()
	var seen [10]int
	for _, i := range cells {
		seen[g[i]]++
	}
	assert.Zero(t, seen[0], "unit has an empty cell")
	for v := 1; v <= 9; v++ {
		assert.Equal(t, 1, seen[v], "value %d count in unit %v", v, cells)
	}
}

func TestSolvedProducesValidGrid(t *testing.T) {
	gen := New(solver.NewBacktracking())
	g, st, err := gen.Solved(context.Background(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Positive(t, st.Nodes)

	var unit []int
	for r := 0; r < 9; r++ {
		unit = unit[:0]
		for c := 0; c < 9; c++ {
			unit = append(unit, domain.Index(r, c))
		}
		isPermutationUnit(t, g, unit)
	}
	for c := 0; c < 9; c++ {
		unit = unit[:0]
		for r := 0; r < 9; r++ {
			unit = append(unit, domain.Index(r, c))
		}
		isPermutationUnit(t, g, unit)
	}
	for b := 0; b < 9; b++ {
		unit = unit[:0]
		br, bc := (b/3)*3, (b%3)*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				unit = append(unit, domain.Index(br+dr, bc+dc))
			}
		}
		isPermutationUnit(t, g, unit)
	}
}

func TestSolvedVariesWithSeed(t *testing.T) {
	gen := New(solver.NewBacktracking())
	a, _, err := gen.Solved(context.Background(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, _, err := gen.Solved(context.Background(), rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "different seeds should produce different grids")
}

func TestSolvedDeterministicForSeed(t *testing.T) {
	gen := New(solver.NewBacktracking())
	a, _, err := gen.Solved(context.Background(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, _, err := gen.Solved(context.Background(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCarveKeepsPuzzleSolvable(t *testing.T) {
	s := solver.NewBacktracking()
	gen := New(s)
	rng := rand.New(rand.NewSource(3))

	full, _, err := gen.Solved(context.Background(), rng)
	require.NoError(t, err)

	const removals = 45
	carved, _, err := gen.Carve(context.Background(), full, removals, rng)
	require.NoError(t, err)

	assert.LessOrEqual(t, carved.CountEmpty(), removals, "never more removals than requested")
	_, _, err = s.Solve(context.Background(), carved)
	assert.NoError(t, err, "carved puzzle must stay solvable")

	// every surviving cell matches the solution it was carved from
	for i := 0; i < domain.Cells; i++ {
		if carved[i] != 0 {
			assert.Equal(t, full[i], carved[i])
		}
	}
}

func TestCarveZeroRemovals(t *testing.T) {
	s := solver.NewBacktracking()
	gen := New(s)
	rng := rand.New(rand.NewSource(5))
	full, _, err := gen.Solved(context.Background(), rng)
	require.NoError(t, err)

	carved, _, err := gen.Carve(context.Background(), full, 0, rng)
	require.NoError(t, err)
	assert.Equal(t, full, carved)
}

func TestCarveExcessiveRemovalsIsNotAnError(t *testing.T) {
	s := solver.NewBacktracking()
	gen := New(s)
	rng := rand.New(rand.NewSource(9))
	full, _, err := gen.Solved(context.Background(), rng)
	require.NoError(t, err)

	// more than 81: the carver stops when the permutation is exhausted
	carved, _, err := gen.Carve(context.Background(), full, 200, rng)
	require.NoError(t, err)
	assert.Positive(t, carved.CountEmpty())
	_, _, err = s.Solve(context.Background(), carved)
	assert.NoError(t, err)
}

func TestGeneratePipeline(t *testing.T) {
	gen := New(solver.NewBacktracking())
	p, st, err := gen.Generate(context.Background(), domain.Medium.Removals(), 12345)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, int64(12345), p.Seed)
	assert.True(t, p.Solution.IsComplete())
	assert.Positive(t, p.Grid.CountEmpty())
	assert.Positive(t, st.Nodes)

	given := p.Givens()
	for i := 0; i < domain.Cells; i++ {
		if given[i] {
			assert.Equal(t, p.Solution[i], p.Grid[i])
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	gen := New(solver.NewBacktracking())
	a, _, err := gen.Generate(context.Background(), 47, 99)
	require.NoError(t, err)
	b, _, err := gen.Generate(context.Background(), 47, 99)
	require.NoError(t, err)
	assert.Equal(t, a.Grid, b.Grid)
	assert.Equal(t, a.Solution, b.Solution)
	assert.NotEqual(t, a.ID, b.ID, "ids are per-instance")
}
