// Package core defines the maze graph model: a Cell per grid slot and the
// Connections carved between them.
//
// Cells live in an arena owned by Graph and are addressed by CellID, their
// row-major index on the grid. A Connection stores two CellIDs rather than
// pointers, so the mutual Cell↔Connection references never form ownership
// cycles.
//
// Lifecycle:
//
//   - NewGraph allocates one Cell per grid slot. Cells are never destroyed.
//   - Connect appends the connection to both endpoints (both directions),
//     so traversal over Out is undirected. Adjacency only grows until Reset.
//   - State and the two distance labels are mutated by search and reset.
//
// Graph is not safe for concurrent use: a maze is driven by exactly one
// controller from one goroutine.
//
// Errors:
//
//	ErrNotAdjacent  - Connect between cells that are not grid neighbours.
//	ErrSelfLoop     - Connect from a cell to itself.
//	ErrCellNotFound - a CellID outside the arena.
//	gridgraph.ErrOutOfBounds - CellAt with a position outside the grid.
package core
