// Package cli wires the engine packages into the sudoku command tree. The
// engine itself never prints or logs; everything user-facing lives here.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/playgrid/sudoku/internal/ports"
	"github.com/playgrid/sudoku/internal/solver"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose  bool
	NoColor  bool
	Solver   string // "backtrack" | "dlx"
	Config   string
	LogLevel string

	// FileConfig holds values loaded from the YAML config, consulted by
	// subcommands for flags the user left at their defaults.
	FileConfig Config
}

// NewRootCommand creates the root command for the sudoku CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Generate, solve, and play 9x9 sudoku puzzles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return err
			}
			if _, err := newSolver(opts.Solver); err != nil {
				return err
			}
			configureLogging(opts)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (search stats)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable board colors")
	cmd.PersistentFlags().StringVar(&opts.Solver, "solver", "backtrack", "solver to use: backtrack|dlx")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "debug|info|warn|error")

	cmd.AddCommand(NewNewCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewHintCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

// newSolver maps the flag value onto a solver implementation. Backtracking
// is the default; its fixed scan order makes solve output reproducible.
func newSolver(kind string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "backtrack", "backtracking":
		return solver.NewBacktracking(), nil
	case "dlx":
		return solver.NewDLX(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q: must be backtrack or dlx", kind)
	}
}

func configureLogging(opts *RootOptions) {
	lvl := slog.LevelInfo
	switch strings.ToLower(opts.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	// Logs go to stderr so piped board output stays clean.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
