// Package maze builds a perfect maze over a rectangular grid and exposes the
// single-step operations a solver drives once per frame.
//
// What:
//
//   - Construction is randomized Kruskal, one candidate edge per call to
//     StepConstruction: an edge whose endpoints already share a disjoint-set
//     component is discarded, any other edge is carved in both directions
//     and its components are merged. The draw order from kruskal.Supplier
//     stands in for edge weights.
//   - Search advances one frontier pop per StepSearch; manual play moves one
//     passage per StepManual. Both record, per reached cell, the Connection
//     it was first reached by (CameFrom), which later drives backtracking.
//   - After construction every cell carries its tree distance from the start
//     (top-left) and from the exit (bottom-right), computed by a BFS sweep.
//
// Invariants:
//
//   - A constructed maze has exactly Rows*Cols-1 passages, is connected and
//     acyclic (Validate checks all three).
//   - The start cell never has a CameFrom entry.
//
// Errors:
//
//   - gridgraph.ErrEmptyGrid for rows or cols below 1.
//   - gridgraph.ErrOutOfBounds from CellAt.
//   - ErrNotConstructed, ErrDuplicatePassage, ErrEdgeCount, ErrDisconnected
//     and ErrCycle from Validate.
//
// A Maze is not safe for concurrent use.
package maze
