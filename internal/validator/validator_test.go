package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/sudoku/internal/domain"
)

// The standard reference solution used across the engine tests.
const referenceSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func mustParse(t *testing.T, s string) domain.Grid {
	t.Helper()
	g, err := domain.Parse(s)
	require.NoError(t, err)
	return g
}

func TestReferenceSolutionIsLegalEverywhere(t *testing.T) {
	g := mustParse(t, referenceSolution)
	for i := 0; i < domain.Cells; i++ {
		assert.True(t, Legal(g, i, g[i]), "cell %d value %d", i, g[i])
	}
	assert.Empty(t, Conflicts(g))
}

func TestLegalRejectsRowColBlockDuplicates(t *testing.T) {
	var g domain.Grid
	g[domain.Index(0, 0)] = 5

	assert.False(t, Legal(g, domain.Index(0, 8), 5), "row duplicate")
	assert.False(t, Legal(g, domain.Index(8, 0), 5), "column duplicate")
	assert.False(t, Legal(g, domain.Index(2, 2), 5), "block duplicate")
	assert.True(t, Legal(g, domain.Index(1, 1), 6))
	assert.True(t, Legal(g, domain.Index(4, 4), 5), "far cell unaffected")
}

func TestLegalIgnoresTheCellItself(t *testing.T) {
	g := mustParse(t, referenceSolution)
	// asking about a filled cell must not see its own value as a duplicate
	assert.True(t, Legal(g, 0, g[0]))
	// zero is always placeable
	assert.True(t, Legal(g, 0, 0))
}

func TestConflictsReportsBothSides(t *testing.T) {
	var g domain.Grid
	g[domain.Index(3, 2)] = 7
	g[domain.Index(3, 6)] = 7 // same row

	got := Conflicts(g)
	assert.Equal(t, []int{domain.Index(3, 2), domain.Index(3, 6)}, got)
}

func TestConflictsCoversAllUnits(t *testing.T) {
	var g domain.Grid
	// column duplicate
	g[domain.Index(1, 4)] = 9
	g[domain.Index(7, 4)] = 9
	// block duplicate
	g[domain.Index(0, 0)] = 2
	g[domain.Index(2, 2)] = 2

	got := Conflicts(g)
	assert.ElementsMatch(t, []int{
		domain.Index(1, 4), domain.Index(7, 4),
		domain.Index(0, 0), domain.Index(2, 2),
	}, got)
}

func TestConflictsIdempotent(t *testing.T) {
	var g domain.Grid
	g[0], g[1] = 4, 4
	first := Conflicts(g)
	second := Conflicts(g)
	assert.Equal(t, first, second)
}

func TestConflictsEmptyGrid(t *testing.T) {
	var g domain.Grid
	assert.Empty(t, Conflicts(g))
}

func TestConflictsSingleWrongCellAmongCorrect(t *testing.T) {
	g := mustParse(t, referenceSolution)
	g[domain.Index(0, 2)] = 0
	assert.Empty(t, Conflicts(g), "a hole is not a conflict")

	g[domain.Index(0, 2)] = 5 // duplicates the 5 at r1c1
	got := Conflicts(g)
	assert.Contains(t, got, domain.Index(0, 0))
	assert.Contains(t, got, domain.Index(0, 2))
}
