package gridgraph

// CandidateEdgeCount returns rows*(cols-1) + cols*(rows-1), the number of
// orthogonal neighbour pairs in the grid.
func (g Grid) CandidateEdgeCount() int {
	return g.Rows*(g.Cols-1) + g.Cols*(g.Rows-1)
}

// CandidateEdges lists every orthogonal neighbour pair exactly once.
//
// Order:
//  1. For each cell in row-major order, the edge to its right neighbour.
//  2. For each cell in row-major order, the edge to the neighbour below.
//
// The order matters: the randomized supplier splits this list by position,
// so the first half is dominated by horizontal edges.
//
// Complexity: O(Rows×Cols).
func (g Grid) CandidateEdges() []Edge {
	edges := make([]Edge, 0, g.CandidateEdgeCount())
	for i := 0; i < g.Size(); i++ {
		p := g.Coordinate(i)
		if p.X < g.Cols-1 {
			edges = append(edges, Edge{A: p, B: Position{X: p.X + 1, Y: p.Y}})
		}
	}
	for i := 0; i < g.Size(); i++ {
		p := g.Coordinate(i)
		if p.Y < g.Rows-1 {
			edges = append(edges, Edge{A: p, B: Position{X: p.X, Y: p.Y + 1}})
		}
	}
	return edges
}
