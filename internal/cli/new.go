package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/playgrid/sudoku/internal/domain"
	"github.com/playgrid/sudoku/internal/generator"
)

// NewOptions holds flags for the new command.
type NewOptions struct {
	*RootOptions
	Difficulty string
	Removals   int
	Seed       int64
}

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a fresh puzzle and print it",
		Long: `Generate a solved grid, carve cells out of it, and print the result.

The carver guarantees the puzzle stays solvable, not that the solution is
unique. --removals overrides the difficulty preset; values at or above 81
simply remove as many cells as the carver can.

Example:
  sudoku new --difficulty hard
  sudoku new --removals 50 --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Difficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().IntVar(&opts.Removals, "removals", 0, "cells to remove (overrides --difficulty)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time-based)")

	return cmd
}

func (o *NewOptions) removals(cmd *cobra.Command) int {
	if o.Removals > 0 {
		return o.Removals
	}
	diff := o.Difficulty
	if !cmd.Flags().Changed("difficulty") && o.FileConfig.Difficulty != "" {
		diff = o.FileConfig.Difficulty
	}
	return domain.ParseDifficulty(diff).Removals()
}

func runNew(opts *NewOptions, cmd *cobra.Command) error {
	s, err := newSolver(opts.Solver)
	if err != nil {
		return err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	removals := opts.removals(cmd)

	gen := generator.New(s)
	p, st, err := gen.Generate(cmd.Context(), removals, seed)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	slog.Debug("generated puzzle",
		"id", p.ID,
		"seed", p.Seed,
		"empty", p.Grid.CountEmpty(),
		"nodes", st.Nodes,
		"dur", st.Duration.Round(time.Millisecond),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, RenderBoard(p.Grid, p.Givens(), nil, DefaultBoardStyles(opts.NoColor)))
	fmt.Fprintln(out, p.Grid.String())
	if opts.Verbose {
		fmt.Fprintf(out, "id=%s seed=%d empty=%d nodes=%d dur=%v\n",
			p.ID, p.Seed, p.Grid.CountEmpty(), st.Nodes, st.Duration.Round(time.Millisecond))
	}
	return nil
}
