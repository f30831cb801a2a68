// Package gridgraph describes the rectangular grid a maze is carved from:
// integer positions, the four orthogonal directions, bounds checking and the
// list of candidate edges between orthogonal neighbours.
//
// What:
//
//   - Position is a comparable {X, Y} value. It is used directly as a map key,
//     so every lookup is by value, never by identity.
//   - Grid{Rows, Cols} maps positions to row-major indices (y*Cols + x) and back.
//   - CandidateEdges lists every orthogonal neighbour pair exactly once:
//     all right-neighbour pairs first, then all below-neighbour pairs.
//
// Complexity:
//
//   - Index, Coordinate, InBounds, Neighbor: O(1).
//   - CandidateEdges: O(Rows×Cols) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols below 1.
//   - ErrOutOfBounds: a position outside the grid was looked up.
//   - ErrBadDirection: a direction name could not be parsed.
package gridgraph
