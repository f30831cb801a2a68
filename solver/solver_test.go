package solver_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/gridgraph"
	"github.com/katalvlaran/mazeworld/kruskal"
	"github.com/katalvlaran/mazeworld/maze"
	"github.com/katalvlaran/mazeworld/solver"
)

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newController(t *testing.T, rows, cols int, seed int64) *solver.Controller {
	t.Helper()
	m, err := maze.New(rows, cols, maze.WithSeed(seed), maze.WithLogger(quiet()))
	require.NoError(t, err)
	return solver.New(m, solver.WithLogger(quiet()))
}

// ticked drives c from Setup to None through Tick alone.
func ticked(t *testing.T, c *solver.Controller) {
	t.Helper()
	for i := 0; c.Mode() == solver.Setup; i++ {
		require.Less(t, i, 10*c.Maze().Len()+10, "construction did not finish")
		c.Tick()
	}
	require.True(t, c.DoneConstructing())
	require.Equal(t, solver.None, c.Mode())
}

// pathCells collects the cells marked Path.
func pathCells(c *solver.Controller) []core.CellID {
	var out []core.CellID
	for i, cell := range c.Maze().Cells() {
		if cell.State == core.Path {
			out = append(out, core.CellID(i))
		}
	}
	return out
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]solver.Mode{
		"depth": solver.Depth, "DFS": solver.Depth, "bfs": solver.Breadth,
		"Breadth": solver.Breadth, "manual": solver.Manual, "none": solver.None,
	} {
		got, err := solver.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := solver.ParseMode("astar")
	assert.ErrorIs(t, err, solver.ErrUnknownMode)
	assert.Equal(t, "backtrack", solver.Backtrack.String())
}

func TestSetup_TickToNone(t *testing.T) {
	c := newController(t, 6, 7, 1)
	assert.Equal(t, solver.Setup, c.Mode())
	assert.False(t, c.DoneConstructing())
	ticked(t, c)

	m := c.Maze()
	require.NoError(t, m.Validate())
	assert.Equal(t, 0, m.Cell(m.Start()).DistFromStart)
	assert.Equal(t, 0, m.Cell(m.End()).DistFromExit)
}

func TestNew_ConstructedMazeSkipsSetup(t *testing.T) {
	m, err := maze.New(3, 3, maze.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, m.Construct())
	c := solver.New(m, solver.WithLogger(quiet()))
	assert.Equal(t, solver.None, c.Mode())
	assert.True(t, c.DoneConstructing())
}

func TestIllegalTransitionsAreNoOps(t *testing.T) {
	c := newController(t, 4, 4, 2)

	// Search before construction finished.
	assert.False(t, c.SetMode(solver.Depth))
	assert.False(t, c.StepSearch())
	assert.False(t, c.StepManual(gridgraph.Right))
	assert.False(t, c.StepBacktrack())
	c.ResetSearch()
	assert.Equal(t, solver.Setup, c.Mode())

	assert.True(t, c.SetBias(kruskal.Horizontal))
	ticked(t, c)

	// Bias is a setup-only knob.
	assert.False(t, c.SetBias(kruskal.Vertical))
	assert.Equal(t, kruskal.Horizontal, c.Maze().Bias())
	// Setup and Backtrack are never requested from outside.
	assert.False(t, c.SetMode(solver.Setup))
	assert.False(t, c.SetMode(solver.Backtrack))
	// Manual moves only in Manual mode.
	assert.False(t, c.StepManual(gridgraph.Down))
	assert.True(t, c.StepConstruction(), "reports completion outside Setup")
	assert.Equal(t, solver.None, c.Mode())
	assert.Equal(t, c.Maze().Start(), c.Current())
}

func TestSearch_DepthAndBreadthAgree(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		c := newController(t, 10, 12, seed)
		ticked(t, c)
		m := c.Maze()
		want := m.Cell(m.End()).DistFromStart

		var paths [][]core.CellID
		for _, mode := range []solver.Mode{solver.Depth, solver.Breadth} {
			require.True(t, c.SetMode(mode))
			for i := 0; c.Mode() != solver.None; i++ {
				require.Less(t, i, 4*m.Len(), "%s did not finish", mode)
				c.Tick()
			}
			assert.True(t, c.Found())
			assert.Equal(t, want, c.PathLength(), "%s seed %d", mode, seed)
			assert.Equal(t, m.Start(), c.Current())

			path := pathCells(c)
			assert.Len(t, path, want+1)
			visited := 0
			for _, cell := range m.Cells() {
				if cell.State != core.Unvisited {
					visited++
				}
			}
			assert.Equal(t, visited-len(path), c.WrongMoves())
			paths = append(paths, path)
		}
		assert.Equal(t, paths[0], paths[1], "a perfect maze has one path")
	}
}

func TestSearch_BreadthWalksLayers(t *testing.T) {
	c := newController(t, 7, 7, 9)
	ticked(t, c)
	m := c.Maze()
	require.True(t, c.SetMode(solver.Breadth))

	last := 0
	for c.Mode() == solver.Breadth {
		require.True(t, c.StepSearch())
		d := m.Cell(c.Current()).DistFromStart
		assert.GreaterOrEqual(t, d, last, "breadth-first pops never move closer")
		last = d
	}
	assert.Equal(t, solver.Backtrack, c.Mode())
}

func TestResetSearch_Idempotent(t *testing.T) {
	c := newController(t, 5, 5, 4)
	ticked(t, c)
	tree := c.Maze().Tree()

	_, err := c.Solve(solver.Depth)
	require.NoError(t, err)
	require.NotZero(t, c.PathLength())

	c.ResetSearch()
	first := c.Stats()
	c.ResetSearch()
	assert.Equal(t, first, c.Stats())

	assert.Equal(t, solver.None, c.Mode())
	assert.False(t, c.Found())
	assert.Zero(t, c.PathLength())
	assert.Zero(t, c.WrongMoves())
	assert.Empty(t, pathCells(c))
	assert.Equal(t, tree, c.Maze().Tree(), "ResetSearch keeps the maze")
}

func TestReset_ReturnsToSetup(t *testing.T) {
	c := newController(t, 4, 5, 8)
	ticked(t, c)
	require.True(t, c.SetMode(solver.Breadth))
	c.Tick()

	c.Reset()
	assert.Equal(t, solver.Setup, c.Mode())
	assert.False(t, c.DoneConstructing())
	assert.Empty(t, c.Maze().Tree())
	ticked(t, c)
	assert.NoError(t, c.Maze().Validate())
}

func TestManual_Corridor(t *testing.T) {
	// A single row has only one spanning tree: a straight corridor.
	c := newController(t, 1, 4, 3)
	ticked(t, c)
	require.True(t, c.SetMode(solver.Manual))

	assert.True(t, c.StepManual(gridgraph.Up), "walking into a wall is legal")
	assert.Equal(t, c.Maze().Start(), c.Current())
	assert.Zero(t, c.Steps())

	require.True(t, c.StepManual(gridgraph.Right))
	require.True(t, c.StepManual(gridgraph.Right))
	require.True(t, c.StepManual(gridgraph.Left))
	require.True(t, c.StepManual(gridgraph.Right))
	assert.Equal(t, core.CellID(2), c.Current())
	assert.False(t, c.Found())

	require.True(t, c.StepManual(gridgraph.Right))
	assert.True(t, c.Found())
	assert.Equal(t, solver.Backtrack, c.Mode())
	assert.False(t, c.StepManual(gridgraph.Left))

	for c.Mode() == solver.Backtrack {
		c.Tick()
	}
	assert.Equal(t, 3, c.PathLength())
	assert.Zero(t, c.WrongMoves())
	assert.Len(t, pathCells(c), 4)
	assert.Equal(t, 5, c.Steps())
}

func TestSingleCell(t *testing.T) {
	for _, mode := range []solver.Mode{solver.Depth, solver.Breadth, solver.Manual} {
		c := newController(t, 1, 1, 1)
		ticked(t, c)
		require.True(t, c.SetMode(mode))
		for i := 0; c.Mode() != solver.None; i++ {
			require.Less(t, i, 5, mode.String())
			c.Tick()
		}
		assert.True(t, c.Found(), mode.String())
		assert.Zero(t, c.PathLength())
		assert.Equal(t, core.Path, c.Maze().Cell(0).State)
	}
}

func TestSolve(t *testing.T) {
	c := newController(t, 9, 9, 12)
	st, err := c.Solve(solver.Breadth)
	require.NoError(t, err)
	m := c.Maze()
	assert.Equal(t, solver.Breadth, st.Mode)
	assert.Equal(t, m.Cell(m.End()).DistFromStart, st.PathLength)
	assert.Equal(t, 81, st.Cells)
	assert.GreaterOrEqual(t, st.Steps, st.PathLength+1)

	_, err = c.Solve(solver.Manual)
	assert.ErrorIs(t, err, solver.ErrUnsupportedMode)
}
