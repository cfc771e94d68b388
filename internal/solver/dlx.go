package solver

import (
	"context"
	"time"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/ports"
)

// DLX implements Algorithm X with dancing links.
// Exact-cover mapping: 324 constraint columns, 729 candidate rows (i, v).
// Columns: 0..80    -> cell i is filled
//          81..161  -> row r contains v
//          162..242 -> column c contains v
//          243..323 -> block b contains v
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

const (
	dlxCols     = 4 * domain.Cells    // 324
	dlxRows     = domain.Cells * 9    // 729
	colCellBase = 0
	colRowBase  = 81
	colColBase  = 162
	colBlkBase  = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxCol
	cand                  int // 0..728, identifies (cell, value)
}

type dlxCol struct {
	dlxNode
	size   int
	active bool
}

type dlxMatrix struct {
	cols    [dlxCols]*dlxCol
	rowHead [dlxRows]*dlxNode
	chosen  [domain.Cells]*dlxNode
	depth   int
	nodes   int
	active  int // uncovered constraint columns
}

func candIndex(i int, v uint8) int { return i*9 + int(v) - 1 }

func candColumns(i int, v uint8) [4]int {
	d := int(v) - 1
	return [4]int{
		colCellBase + i,
		colRowBase + domain.RowOf(i)*9 + d,
		colColBase + domain.ColOf(i)*9 + d,
		colBlkBase + domain.BlockOf(i)*9 + d,
	}
}

func newMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	for c := 0; c < dlxCols; c++ {
		col := &dlxCol{active: true}
		col.up = &col.dlxNode
		col.down = &col.dlxNode
		m.cols[c] = col
	}
	m.active = dlxCols

	for i := 0; i < domain.Cells; i++ {
		for v := uint8(1); v <= 9; v++ {
			cand := candIndex(i, v)
			var first, prev *dlxNode
			for _, id := range candColumns(i, v) {
				col := m.cols[id]
				n := &dlxNode{col: col, cand: cand}
				n.down = &col.dlxNode
				n.up = col.dlxNode.up
				col.dlxNode.up.down = n
				col.dlxNode.up = n
				col.size++
				if first == nil {
					first = n
					n.left = n
					n.right = n
				} else {
					n.left = prev
					n.right = prev.right
					prev.right.left = n
					prev.right = n
				}
				prev = n
			}
			m.rowHead[cand] = first
		}
	}
	return m
}

func (m *dlxMatrix) cover(col *dlxCol) {
	if col.active {
		col.active = false
		m.active--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *dlxMatrix) uncover(col *dlxCol) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		m.active++
	}
}

// chooseCol picks the uncovered column with the fewest candidates.
func (m *dlxMatrix) chooseCol() *dlxCol {
	var best *dlxCol
	for _, c := range m.cols {
		if !c.active {
			continue
		}
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

func (m *dlxMatrix) search(ctx context.Context, k, want int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // abandon search
	default:
	}
	if m.active == 0 {
		m.depth = k
		*found++
		return *found >= want
	}
	c := m.chooseCol()
	if c == nil || c.size == 0 {
		return false
	}
	m.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		m.nodes++
		m.chosen[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				m.cover(j.col)
			}
		}
		if m.search(ctx, k+1, want, found) {
			for j := r.left; j != r; j = j.left {
				m.uncover(j.col)
			}
			m.uncover(c)
			return true
		}
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
	}
	m.uncover(c)
	return false
}

// applyGiven selects the candidate row for a prefilled cell by covering its
// columns. A column that is already covered means the givens contradict
// each other, which the caller reports as unsolvable.
func (m *dlxMatrix) applyGiven(i int, v uint8) bool {
	head := m.rowHead[candIndex(i, v)]
	for j := head; ; j = j.right {
		if !j.col.active {
			return false
		}
		if j.right == head {
			break
		}
	}
	for j := head; ; j = j.right {
		m.cover(j.col)
		if j.right == head {
			break
		}
	}
	return true
}

func (m *dlxMatrix) load(g domain.Grid) bool {
	for i, v := range g {
		if v == 0 {
			continue
		}
		if v > 9 || !m.applyGiven(i, v) {
			return false
		}
	}
	return true
}

func (s *DLX) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if !m.load(g) {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	found := 0
	_ = m.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if found < 1 {
		return domain.Grid{}, st, ErrNoSolution
	}
	// Givens were consumed before the search, so start from the input grid
	// and write only the searched placements on top.
	out := g
	for k := 0; k < m.depth; k++ {
		cand := m.chosen[k].cand
		out[cand/9] = uint8(cand%9) + 1
	}
	return out, st, nil
}

func (s *DLX) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if !m.load(g) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := 0
	_ = m.search(ctx, 0, 2, &found) // stop after a second solution
	return found == 1, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}, nil
}
