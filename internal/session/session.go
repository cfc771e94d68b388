// Package session owns the mutable state of one game in progress: the
// solution, the visible grid, the given mask, the undo history, and the
// mistake counter. A Session belongs to exactly one caller; every operation
// runs to completion before returning.
package session

import (
	"context"
	"errors"
	"math/rand"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/ports"
	"github.com/playgrid/sudoku/internal/validator"
)

// Recoverable no-op reasons. None of these leave the session mutated.
var (
	ErrLockedCell    = errors.New("cell is a given and cannot be edited")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToHint = errors.New("nothing to hint")
	ErrBadIndex      = errors.New("cell index out of range")
	ErrBadValue      = errors.New("cell value must be 0-9")
	ErrNoGame        = errors.New("no game in progress")
)

// Session is the play-state engine behind a single board.
type Session struct {
	puzzler ports.Puzzler
	rng     *rand.Rand

	puzzle    *domain.Puzzle
	solution  domain.Grid
	state     domain.Grid
	given     [domain.Cells]bool
	history   []domain.HistoryEntry
	mistakes  int
	conflicts []int
}

// New wires a session around a puzzle pipeline. rng drives hint selection;
// pass a seeded source for reproducible games.
func New(p ports.Puzzler, rng *rand.Rand) *Session {
	return &Session{puzzler: p, rng: rng}
}

// Snapshot is everything a caller needs to render the board after any
// mutating operation.
type Snapshot struct {
	State     domain.Grid
	Given     [domain.Cells]bool
	Conflicts []int
	Mistakes  int
	Solved    bool
}

// NewGame generates and carves a fresh puzzle, replacing all play state.
// History and mistakes are discarded with the old puzzle.
func (s *Session) NewGame(ctx context.Context, removals int, seed int64) error {
	p, _, err := s.puzzler.Generate(ctx, removals, seed)
	if err != nil {
		return err
	}
	s.Load(p)
	return nil
}

// Load starts play on an already-built puzzle.
func (s *Session) Load(p *domain.Puzzle) {
	s.puzzle = p
	s.solution = p.Solution
	s.state = p.Grid
	s.given = p.Givens()
	s.history = s.history[:0]
	s.mistakes = 0
	s.refreshConflicts()
}

// SetCell writes v at index i. Givens are locked: the write is rejected as
// a no-op with ErrLockedCell. An accepted edit that actually changes the
// cell is pushed onto the undo history, and a wrong non-zero value bumps
// the mistake counter (mistakes only ever go up).
func (s *Session) SetCell(i int, v uint8) error {
	if s.puzzle == nil {
		return ErrNoGame
	}
	if !domain.ValidIndex(i) {
		return ErrBadIndex
	}
	if v > 9 {
		return ErrBadValue
	}
	if s.given[i] {
		return ErrLockedCell
	}
	if s.state[i] != v {
		s.history = append(s.history, domain.HistoryEntry{Index: i, Previous: s.state[i]})
		s.state[i] = v
	}
	if v != 0 && v != s.solution[i] {
		s.mistakes++
	}
	s.refreshConflicts()
	return nil
}

// ClearCell empties index i, with the same locked-cell guard as SetCell.
func (s *Session) ClearCell(i int) error { return s.SetCell(i, 0) }

// Undo pops the most recent history entry and restores the cell it covers.
// Mistakes stay as they are, and a cell unlocked by a hint stays unlocked.
func (s *Session) Undo() error {
	if s.puzzle == nil {
		return ErrNoGame
	}
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.state[last.Index] = last.Previous
	s.refreshConflicts()
	return nil
}

// Hint picks one cell that is empty or wrong, uniformly at random, and
// fills it from the solution. A hinted cell is removed from the given mask,
// so even a prefilled cell becomes editable after a hint.
func (s *Session) Hint() (int, error) {
	if s.puzzle == nil {
		return 0, ErrNoGame
	}
	pool := make([]int, 0, domain.Cells)
	for i := 0; i < domain.Cells; i++ {
		if s.state[i] == 0 || s.state[i] != s.solution[i] {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return 0, ErrNothingToHint
	}
	i := pool[s.rng.Intn(len(pool))]
	s.history = append(s.history, domain.HistoryEntry{Index: i, Previous: s.state[i]})
	s.state[i] = s.solution[i]
	s.given[i] = false
	s.refreshConflicts()
	return i, nil
}

// RevealSolution copies the solution over the visible state. Meant for a
// user-confirmed "show answer"; it bypasses the given mask and the history.
func (s *Session) RevealSolution() error {
	if s.puzzle == nil {
		return ErrNoGame
	}
	s.state = s.solution
	s.refreshConflicts()
	return nil
}

// IsSolved reports whether every cell is filled and matches the solution.
func (s *Session) IsSolved() bool {
	if s.puzzle == nil {
		return false
	}
	return s.state == s.solution
}

// Conflicts recomputes the conflict set from the visible state alone,
// without mutating anything. Mutating operations keep a cached copy that
// Snapshot hands out.
func (s *Session) Conflicts() []int {
	return validator.Conflicts(s.state)
}

// Snapshot returns the caller-facing view of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Given:     s.given,
		Conflicts: append([]int(nil), s.conflicts...),
		Mistakes:  s.mistakes,
		Solved:    s.IsSolved(),
	}
}

// Puzzle returns the puzzle being played, or nil before the first game.
func (s *Session) Puzzle() *domain.Puzzle { return s.puzzle }

// Mistakes returns the monotonic wrong-entry counter.
func (s *Session) Mistakes() int { return s.mistakes }

// HistoryLen reports how many edits can still be undone.
func (s *Session) HistoryLen() int { return len(s.history) }

func (s *Session) refreshConflicts() {
	// always rebuilt in full; never patched incrementally
	s.conflicts = validator.Conflicts(s.state)
}
