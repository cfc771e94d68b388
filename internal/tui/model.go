// Package tui implements the interactive terminal board. It is strictly a
// caller of the session engine: every keypress maps onto one session
// operation and the view is rebuilt from the returned snapshot. The elapsed
// timer lives here, not in the engine.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/hint"
	"github.com/playgrid/sudoku/internal/session"
)

// tickMsg advances the displayed clock once per second.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type styles struct {
	given    lipgloss.Style
	entry    lipgloss.Style
	conflict lipgloss.Style
	cursor   lipgloss.Style
	frame    lipgloss.Style
	status   lipgloss.Style
	win      lipgloss.Style
}

func newStyles() styles {
	return styles{
		given:    lipgloss.NewStyle().Bold(true),
		entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		conflict: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		cursor:   lipgloss.NewStyle().Reverse(true),
		frame:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		status:   lipgloss.NewStyle().Faint(true),
		win:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

// Model drives one game of sudoku in the terminal.
type Model struct {
	sess   *session.Session
	snap   session.Snapshot
	hinter *hint.Singles

	cursor  int
	status  string
	started time.Time
	elapsed time.Duration
	won     bool

	removals int
	seed     int64

	st styles
}

// New builds a model around a session that already has a game loaded.
func New(sess *session.Session, removals int, seed int64) Model {
	return Model{
		sess:     sess,
		snap:     sess.Snapshot(),
		hinter:   hint.NewSingles(),
		status:   "arrows move, 1-9 fill, 0 clear, u undo, i hint, n new, q quit",
		started:  time.Now(),
		removals: removals,
		seed:     seed,
		st:       newStyles(),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.won {
			return m, nil // clock stops on win
		}
		m.elapsed = time.Since(m.started)
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := domain.RowOf(m.cursor), domain.ColOf(m.cursor)

	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up":
		if row > 0 {
			m.cursor = domain.Index(row-1, col)
		}
	case "down":
		if row < domain.Size-1 {
			m.cursor = domain.Index(row+1, col)
		}
	case "left":
		if col > 0 {
			m.cursor = domain.Index(row, col-1)
		}
	case "right":
		if col < domain.Size-1 {
			m.cursor = domain.Index(row, col+1)
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.apply(m.sess.SetCell(m.cursor, key[0]-'0'), "")
	case "0", "x", "backspace", "delete", " ":
		m.apply(m.sess.ClearCell(m.cursor), "")
	case "u":
		m.apply(m.sess.Undo(), "undid last edit")
	case "i":
		_, err := m.sess.Hint()
		m.apply(err, "filled one cell from the solution")
	case "t":
		if h, ok, _ := m.hinter.Hint(context.Background(), m.snap.State); ok {
			m.status = h.Message
		} else {
			m.status = "no forced placement found"
		}
	case "r":
		m.apply(m.sess.RevealSolution(), "solution revealed")
	case "n":
		seed := time.Now().UnixNano()
		if err := m.sess.NewGame(context.Background(), m.removals, seed); err != nil {
			m.status = err.Error()
			break
		}
		m.cursor = 0
		m.started = time.Now()
		m.elapsed = 0
		m.won = false
		m.snap = m.sess.Snapshot()
		m.status = "new game"
		return m, tick()
	}

	return m, nil
}

// apply refreshes the snapshot after a session call and turns recoverable
// no-op errors into status-line messages.
func (m *Model) apply(err error, okMsg string) {
	switch {
	case err == nil:
		if okMsg != "" {
			m.status = okMsg
		} else {
			m.status = ""
		}
	case errors.Is(err, session.ErrLockedCell):
		m.status = "that cell is a given"
	case errors.Is(err, session.ErrNothingToUndo):
		m.status = "nothing to undo"
	case errors.Is(err, session.ErrNothingToHint):
		m.status = "nothing to hint"
	default:
		m.status = err.Error()
	}
	m.snap = m.sess.Snapshot()
	if m.snap.Solved && !m.won {
		m.won = true
		m.elapsed = time.Since(m.started)
	}
}

func (m Model) View() string {
	inConflict := make(map[int]bool, len(m.snap.Conflicts))
	for _, i := range m.snap.Conflicts {
		inConflict[i] = true
	}

	var b strings.Builder
	rule := m.st.frame.Render("+-------+-------+-------+")
	for r := 0; r < domain.Size; r++ {
		if r%3 == 0 {
			b.WriteString(rule)
			b.WriteByte('\n')
		}
		for c := 0; c < domain.Size; c++ {
			if c%3 == 0 {
				b.WriteString(m.st.frame.Render("| "))
			}
			i := domain.Index(r, c)
			cell := "."
			if v := m.snap.State[i]; v != 0 {
				cell = string('0' + v)
			}
			switch {
			case i == m.cursor:
				cell = m.st.cursor.Render(cell)
			case inConflict[i]:
				cell = m.st.conflict.Render(cell)
			case m.snap.Given[i]:
				cell = m.st.given.Render(cell)
			default:
				cell = m.st.entry.Render(cell)
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteString(m.st.frame.Render("|"))
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteByte('\n')

	line := fmt.Sprintf("mistakes %d  time %s", m.snap.Mistakes, m.elapsed.Round(time.Second))
	b.WriteString(m.st.status.Render(line))
	b.WriteByte('\n')
	if m.won {
		b.WriteString(m.st.win.Render("solved!"))
	} else {
		b.WriteString(m.st.status.Render(m.status))
	}
	b.WriteByte('\n')
	return b.String()
}
