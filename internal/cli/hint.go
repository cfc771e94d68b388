package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playgrid/sudoku/internal/hint"
)

// NewHintCommand creates the hint command.
func NewHintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint [grid]",
		Short: "Suggest the next logically forced placement",
		Long: `Look for a naked single in the given grid: an empty cell with exactly
one legal candidate. Reads the grid as an argument or from stdin, like solve.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGridArg(cmd, args)
			if err != nil {
				return err
			}
			h, ok, err := hint.NewSingles().Hint(cmd.Context(), g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "no forced placement found")
				return nil
			}
			fmt.Fprintln(out, h.Message)
			return nil
		},
	}
	return cmd
}
