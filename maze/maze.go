package maze

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/dsu"
	"github.com/katalvlaran/mazeworld/gridgraph"
	"github.com/katalvlaran/mazeworld/kruskal"
)

// Maze owns the cell arena, the spanning tree carved so far, the candidate
// edge pool and the disjoint-set structure guarding against cycles.
type Maze struct {
	grid     gridgraph.Grid
	graph    *core.Graph
	reps     *dsu.Set
	pool     []gridgraph.Edge
	supplier *kruskal.Supplier
	tree     []gridgraph.Edge
	bias     kruskal.Bias
	rng      *rand.Rand
	log      logrus.FieldLogger
}

// New allocates a rows×cols maze ready for StepConstruction.
// Returns gridgraph.ErrEmptyGrid if rows < 1 or cols < 1.
func New(rows, cols int, opts ...Option) (*Maze, error) {
	grid, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	m := &Maze{
		grid:  grid,
		graph: core.NewGraph(grid),
		reps:  dsu.New(grid.Size()),
		pool:  grid.CandidateEdges(),
		tree:  make([]gridgraph.Edge, 0, grid.Size()-1),
		bias:  cfg.bias,
		rng:   cfg.rng,
		log:   cfg.log.WithFields(logrus.Fields{"rows": rows, "cols": cols}),
	}
	for _, p := range grid.Positions() {
		m.reps.Register(p)
	}
	m.supplier = kruskal.NewSupplier(m.pool, m.bias, m.rng)
	return m, nil
}

// Rows returns the grid height.
func (m *Maze) Rows() int { return m.grid.Rows }

// Cols returns the grid width.
func (m *Maze) Cols() int { return m.grid.Cols }

// Grid returns the grid geometry.
func (m *Maze) Grid() gridgraph.Grid { return m.grid }

// Graph exposes the cell arena for read access by renderers and traversals.
func (m *Maze) Graph() *core.Graph { return m.graph }

// Len returns the number of cells.
func (m *Maze) Len() int { return m.graph.Len() }

// Cells returns every cell in row-major order.
func (m *Maze) Cells() []core.Cell { return m.graph.Cells() }

// Cell returns the cell addressed by id, or nil.
func (m *Maze) Cell(id core.CellID) *core.Cell { return m.graph.Cell(id) }

// CellAt resolves p to a CellID; positions outside the grid fail with
// gridgraph.ErrOutOfBounds.
func (m *Maze) CellAt(p gridgraph.Position) (core.CellID, error) {
	return m.graph.CellAt(p)
}

// Start returns the top-left cell.
func (m *Maze) Start() core.CellID { return 0 }

// End returns the bottom-right cell.
func (m *Maze) End() core.CellID { return core.CellID(m.graph.Len() - 1) }

// Bias returns the current edge-draw bias.
func (m *Maze) Bias() kruskal.Bias { return m.bias }

// SetBias changes the bias for every edge drawn from now on.
func (m *Maze) SetBias(b kruskal.Bias) {
	m.bias = b
	m.supplier.SetBias(b)
	m.log.WithField("bias", b).Debug("bias changed")
}

// Tree returns a copy of the passages carved so far, in carve order.
func (m *Maze) Tree() []gridgraph.Edge {
	out := make([]gridgraph.Edge, len(m.tree))
	copy(out, m.tree)
	return out
}

// NumVisited counts cells in state core.Visited.
func (m *Maze) NumVisited() int {
	return m.graph.CountState(core.Visited)
}

// ResetStates marks every cell unvisited, keeping the maze.
func (m *Maze) ResetStates() {
	m.graph.ResetStates()
}

// Reset discards the maze: passages, states, distances, the disjoint-set
// partition and the candidate supplier are all rebuilt. The RNG continues,
// so the next maze differs from the last one.
func (m *Maze) Reset() {
	m.graph.Reset()
	m.reps.Reset()
	m.tree = m.tree[:0]
	m.supplier = kruskal.NewSupplier(m.pool, m.bias, m.rng)
	m.log.Debug("maze reset")
}
