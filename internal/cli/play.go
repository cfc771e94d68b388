package cli

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/playgrid/sudoku/internal/generator"
	"github.com/playgrid/sudoku/internal/session"
	"github.com/playgrid/sudoku/internal/tui"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Difficulty string
	Removals   int
	Seed       int64
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "play",
		Short:         "Play an interactive game in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Difficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().IntVar(&opts.Removals, "removals", 0, "cells to remove (overrides --difficulty)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time-based)")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	s, err := newSolver(opts.Solver)
	if err != nil {
		return err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	removals := (&NewOptions{
		RootOptions: opts.RootOptions,
		Difficulty:  opts.Difficulty,
		Removals:    opts.Removals,
	}).removals(cmd)

	sess := session.New(generator.New(s), rand.New(rand.NewSource(seed)))
	if err := sess.NewGame(cmd.Context(), removals, seed); err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	_, err = tea.NewProgram(tui.New(sess, removals, seed), tea.WithAltScreen()).Run()
	return err
}
