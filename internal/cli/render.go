package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/playgrid/sudoku/internal/domain"
)

// BoardStyles groups the cell styles used when rendering a grid.
type BoardStyles struct {
	Given    lipgloss.Style
	Entry    lipgloss.Style
	Conflict lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultBoardStyles returns the standard palette. With color disabled the
// board falls back to plain box-drawing output.
func DefaultBoardStyles(noColor bool) BoardStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return BoardStyles{Given: plain, Entry: plain, Conflict: plain, Frame: plain}
	}
	return BoardStyles{
		Given:    lipgloss.NewStyle().Bold(true),
		Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Conflict: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Frame:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// RenderBoard draws g with box-drawing block separators. given marks cells
// styled as prefilled; conflicts marks cells styled as invalid. Either may
// be nil/zero when irrelevant (e.g. printing a solved grid).
func RenderBoard(g domain.Grid, given [domain.Cells]bool, conflicts []int, st BoardStyles) string {
	inConflict := make(map[int]bool, len(conflicts))
	for _, i := range conflicts {
		inConflict[i] = true
	}

	var b strings.Builder
	rule := st.Frame.Render("+-------+-------+-------+")
	for r := 0; r < domain.Size; r++ {
		if r%3 == 0 {
			b.WriteString(rule)
			b.WriteByte('\n')
		}
		for c := 0; c < domain.Size; c++ {
			if c%3 == 0 {
				b.WriteString(st.Frame.Render("| "))
			}
			i := domain.Index(r, c)
			cell := "."
			if g[i] != 0 {
				cell = string('0' + g[i])
			}
			switch {
			case inConflict[i]:
				cell = st.Conflict.Render(cell)
			case given[i]:
				cell = st.Given.Render(cell)
			default:
				cell = st.Entry.Render(cell)
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteString(st.Frame.Render("|"))
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	return b.String()
}
