package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeworld/gridgraph"
)

// Sentinel errors for graph operations.
var (
	// ErrNotAdjacent indicates Connect was asked to join non-neighbouring cells.
	ErrNotAdjacent = errors.New("core: cells are not grid neighbours")

	// ErrSelfLoop indicates Connect was asked to join a cell to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrCellNotFound indicates a CellID outside the arena.
	ErrCellNotFound = errors.New("core: cell not found")
)

// CellID addresses a Cell inside its Graph. It equals the row-major grid index.
type CellID int

// NoCell is the CellID returned when no cell applies.
const NoCell CellID = -1

// CellState is the search state of a cell.
type CellState uint8

const (
	// Unvisited cells have not been expanded by the current search.
	Unvisited CellState = iota
	// Visited cells were expanded but are not (yet) on the solution path.
	Visited
	// Path cells lie on the reconstructed solution path.
	Path
)

func (s CellState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Visited:
		return "visited"
	case Path:
		return "path"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Target selects one of the two distance labels kept on every cell.
type Target uint8

const (
	// FromStart selects the distance from the maze's start cell.
	FromStart Target = iota
	// FromExit selects the distance from the maze's exit cell.
	FromExit
)

func (t Target) String() string {
	if t == FromExit {
		return "exit"
	}
	return "start"
}

// Connection is a directed edge From→To. The maze stores every carved
// passage as a pair of reciprocal Connections.
type Connection struct {
	From CellID
	To   CellID
}

// Reverse returns the reciprocal connection.
func (c Connection) Reverse() Connection {
	return Connection{From: c.To, To: c.From}
}

// Cell is a maze vertex.
type Cell struct {
	// Pos is the cell's fixed grid position.
	Pos gridgraph.Position

	// Out lists passages leaving this cell in carve order.
	Out []Connection

	// State is the search state.
	State CellState

	// DistFromStart and DistFromExit are tree distances, set after construction.
	DistFromStart int
	DistFromExit  int
}

// Distance returns the label selected by t.
func (c *Cell) Distance(t Target) int {
	if t == FromExit {
		return c.DistFromExit
	}
	return c.DistFromStart
}

// SetDistance sets the label selected by t.
func (c *Cell) SetDistance(t Target, d int) {
	if t == FromExit {
		c.DistFromExit = d
		return
	}
	c.DistFromStart = d
}

// reset clears adjacency, state and distances.
func (c *Cell) reset() {
	c.Out = c.Out[:0]
	c.State = Unvisited
	c.DistFromStart = 0
	c.DistFromExit = 0
}
