package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeworld/solver"
)

var (
	solveMode string
	hidePaths bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a maze and solve it without a terminal UI",
		Long: `Build a maze, search it depth-first or breadth-first, print statistics and
draw the result as text: # wall, S start, E exit, * path, . wrong move.`,
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&solveMode, "mode", "m", "breadth", "Search mode: depth or breadth")
	solveCmd.Flags().BoolVar(&hidePaths, "hide-paths", false, "Draw only the maze, not the search")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	mode, err := solver.ParseMode(solveMode)
	if err != nil {
		return err
	}
	c, l, err := newController()
	if err != nil {
		return err
	}
	st, err := c.Solve(mode)
	if err != nil {
		return err
	}
	l.WithField("stats", st.String()).Info("solved")
	return report(cmd.OutOrStdout(), c, st, !hidePaths)
}

func report(w io.Writer, c *solver.Controller, st solver.Stats, showPaths bool) error {
	m := c.Maze()
	if _, err := fmt.Fprintf(w, "maze %dx%d, bias %s\n", m.Rows(), m.Cols(), m.Bias()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s search: %d steps, path length %d, wrong moves %d\n",
		st.Mode, st.Steps, st.PathLength, st.WrongMoves); err != nil {
		return err
	}
	return writeASCII(w, layout(c, showPaths))
}
