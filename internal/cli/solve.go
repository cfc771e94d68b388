package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/solver"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Unique bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a partially filled grid",
		Long: `Solve a grid given as 81 characters (row-major, 0 or . for empty),
either as an argument or on stdin. Prints the completed board, or reports
that no solution exists.

Example:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku new | tail -1 | sudoku solve --unique`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Unique, "unique", false, "also report whether the solution is unique")

	return cmd
}

func readGridArg(cmd *cobra.Command, args []string) (domain.Grid, error) {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return domain.Grid{}, fmt.Errorf("read stdin: %w", err)
		}
		raw = strings.TrimSpace(string(data))
	}
	return domain.Parse(raw)
}

func runSolve(opts *SolveOptions, cmd *cobra.Command, args []string) error {
	g, err := readGridArg(cmd, args)
	if err != nil {
		return err
	}
	s, err := newSolver(opts.Solver)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	solved, st, err := s.Solve(cmd.Context(), g)
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Fprintln(out, "no solution exists")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, RenderBoard(solved, [domain.Cells]bool{}, nil, DefaultBoardStyles(opts.NoColor)))
	fmt.Fprintln(out, solved.String())
	if opts.Verbose {
		fmt.Fprintf(out, "nodes=%d dur=%v\n", st.Nodes, st.Duration.Round(time.Millisecond))
	}
	if opts.Unique {
		unique, _, err := s.Unique(cmd.Context(), g)
		if err != nil {
			return err
		}
		if unique {
			fmt.Fprintln(out, "solution is unique")
		} else {
			fmt.Fprintln(out, "solution is not unique")
		}
	}
	return nil
}
