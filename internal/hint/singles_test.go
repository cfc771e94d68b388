package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/sudoku/internal/domain"
)

const classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestSinglesFindsLastCellOfAUnit(t *testing.T) {
	g, err := domain.Parse(classicSolution)
	require.NoError(t, err)
	// empty one cell: the rest of its row forces the value back
	g[domain.Index(4, 4)] = 0

	h, ok, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Index(4, 4), h.Index)
	assert.Equal(t, uint8(5), h.Value)
	assert.Contains(t, h.Message, "r5c5")
	assert.Contains(t, h.Message, "5")
}

func TestSinglesNoneOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	_, ok, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok, "an empty grid forces nothing")
}

func TestSinglesNoneOnCompleteGrid(t *testing.T) {
	g, err := domain.Parse(classicSolution)
	require.NoError(t, err)
	_, ok, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSinglesReportsFirstInScanOrder(t *testing.T) {
	g, err := domain.Parse(classicSolution)
	require.NoError(t, err)
	g[10] = 0
	g[50] = 0

	h, ok, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, h.Index)
}
