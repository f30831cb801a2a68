package maze

import "errors"

var (
	// ErrNotConstructed indicates an operation that needs a finished maze.
	ErrNotConstructed = errors.New("maze: construction not finished")
	// ErrEdgeCount indicates the spanning tree does not have cells-1 passages.
	ErrEdgeCount = errors.New("maze: spanning tree has wrong edge count")
	// ErrDisconnected indicates some cell cannot be reached from the start.
	ErrDisconnected = errors.New("maze: not every cell is reachable")
	// ErrDuplicatePassage indicates the same candidate edge was carved twice.
	ErrDuplicatePassage = errors.New("maze: passage carved twice")
	// ErrCycle indicates the carved passages contain a cycle.
	ErrCycle = errors.New("maze: passages contain a cycle")
)
