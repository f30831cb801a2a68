package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeworld/kruskal"
	"github.com/katalvlaran/mazeworld/maze"
	"github.com/katalvlaran/mazeworld/solver"
)

var (
	rows     int
	cols     int
	seed     int64
	biasName string
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "mazeworld",
	Short: "Generate and solve perfect mazes",
	Long: `Generate a perfect maze with randomized Kruskal and solve it depth-first,
breadth-first or by hand.

Examples:
  mazeworld solve --rows 20 --cols 40 --mode breadth
  mazeworld solve --bias horizontal --seed 7
  mazeworld play --rows 15 --cols 30`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&rows, "rows", "r", 20, "Maze height in cells")
	pf.IntVarP(&cols, "cols", "c", 30, "Maze width in cells")
	pf.Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	pf.StringVarP(&biasName, "bias", "b", "none", "Edge-draw bias: none, horizontal or vertical")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(lvl)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
	}
	return nil
}

// runSeed resolves the --seed flag.
func runSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// newController builds an unconstructed maze from the persistent flags.
func newController() (*solver.Controller, logrus.FieldLogger, error) {
	bias, err := kruskal.ParseBias(biasName)
	if err != nil {
		return nil, nil, err
	}
	s := runSeed()
	l := log.WithFields(logrus.Fields{"run": uuid.NewString(), "seed": s})
	m, err := maze.New(rows, cols, maze.WithBias(bias), maze.WithSeed(s), maze.WithLogger(l))
	if err != nil {
		return nil, nil, err
	}
	return solver.New(m, solver.WithLogger(l)), l, nil
}
