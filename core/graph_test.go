package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/gridgraph"
)

// newGraph builds an unconnected rows×cols arena.
func newGraph(t *testing.T, rows, cols int) *core.Graph {
	t.Helper()
	grid, err := gridgraph.NewGrid(rows, cols)
	require.NoError(t, err)
	return core.NewGraph(grid)
}

func mustCell(t *testing.T, g *core.Graph, x, y int) core.CellID {
	t.Helper()
	id, err := g.CellAt(gridgraph.Pos(x, y))
	require.NoError(t, err)
	return id
}

// TestNewGraph_RowMajor asserts cells are allocated in row-major order and
// start unconnected and unvisited.
func TestNewGraph_RowMajor(t *testing.T) {
	g := newGraph(t, 2, 3)
	require.Equal(t, 6, g.Len())
	for i, c := range g.Cells() {
		assert.Equal(t, gridgraph.Pos(i%3, i/3), c.Pos)
		assert.Empty(t, c.Out)
		assert.Equal(t, core.Unvisited, c.State)
	}
}

func TestCellAt_OutOfBounds(t *testing.T) {
	g := newGraph(t, 2, 2)
	id, err := g.CellAt(gridgraph.Pos(2, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.Equal(t, core.NoCell, id)
	assert.Nil(t, g.Cell(core.CellID(4)))
	assert.Nil(t, g.Cell(core.NoCell))
}

// TestConnect_BothDirections asserts a carved passage is visible from both ends.
func TestConnect_BothDirections(t *testing.T) {
	g := newGraph(t, 2, 2)
	a, b := mustCell(t, g, 0, 0), mustCell(t, g, 1, 0)
	require.NoError(t, g.Connect(a, b))

	assert.Equal(t, []core.CellID{b}, g.Neighbors(a))
	assert.Equal(t, []core.CellID{a}, g.Neighbors(b))
	assert.Equal(t, core.Connection{From: a, To: b}, g.Cell(a).Out[0])
	assert.Equal(t, core.Connection{From: b, To: a}, g.Cell(b).Out[0])
	assert.Equal(t, 1, g.EdgeCount())

	assert.True(t, g.HasEdgeInDir(a, gridgraph.Right))
	assert.True(t, g.HasEdgeInDir(b, gridgraph.Left))
	assert.False(t, g.HasEdgeInDir(a, gridgraph.Down))
	assert.False(t, g.HasEdgeInDir(a, gridgraph.Left))

	n, ok := g.NeighborInDir(b, gridgraph.Left)
	assert.True(t, ok)
	assert.Equal(t, a, n)
}

func TestConnect_Errors(t *testing.T) {
	g := newGraph(t, 3, 3)
	a := mustCell(t, g, 0, 0)
	assert.ErrorIs(t, g.Connect(a, a), core.ErrSelfLoop)
	assert.ErrorIs(t, g.Connect(a, mustCell(t, g, 1, 1)), core.ErrNotAdjacent)
	assert.ErrorIs(t, g.Connect(a, core.CellID(99)), core.ErrCellNotFound)
	assert.Zero(t, g.EdgeCount())
}

// TestReset_ClearsEverything covers both reset depths.
func TestReset_ClearsEverything(t *testing.T) {
	g := newGraph(t, 1, 2)
	a, b := mustCell(t, g, 0, 0), mustCell(t, g, 1, 0)
	require.NoError(t, g.Connect(a, b))
	g.SetState(a, core.Visited)
	g.SetState(b, core.Path)
	g.Cell(b).SetDistance(core.FromStart, 1)
	g.Cell(a).SetDistance(core.FromExit, 1)

	assert.Equal(t, 1, g.CountState(core.Visited))
	g.ResetStates()
	assert.Equal(t, 2, g.CountState(core.Unvisited))
	assert.Equal(t, 1, g.Cell(b).Distance(core.FromStart), "ResetStates keeps distances")
	assert.Len(t, g.Cell(a).Out, 1, "ResetStates keeps passages")

	g.Reset()
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Neighbors(a))
	assert.Zero(t, g.Cell(a).Distance(core.FromExit))
	assert.Zero(t, g.Cell(b).Distance(core.FromStart))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "visited", core.Visited.String())
	assert.Equal(t, "CellState(9)", core.CellState(9).String())
	assert.Equal(t, "exit", core.FromExit.String())
	c := core.Connection{From: 1, To: 2}
	assert.Equal(t, core.Connection{From: 2, To: 1}, c.Reverse())
}
