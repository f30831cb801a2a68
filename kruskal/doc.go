// Package kruskal supplies the candidate edges of a grid graph in random
// order for an incremental, randomized Kruskal maze construction.
//
// Classic Kruskal sorts edges by weight and accepts each edge whose endpoints
// lie in different disjoint-set components. A maze has no weights; the draw
// order of a Supplier plays their role, so the resulting spanning tree is a
// random one.
//
// Partition and bias:
//
//   - NewSupplier splits the edge list by position: the first ceil(n/2)
//     entries form the "horizontal" half, the remainder the "vertical" half.
//     With gridgraph.Grid.CandidateEdges ordering the first half is mostly
//     right-neighbour pairs, but the split is positional, not geometric.
//   - Each Next draws d uniformly from [0,10). d < Bias.Threshold() prefers
//     the horizontal half, otherwise the vertical half; an empty preferred
//     half falls back to the other one.
//   - Thresholds: None = 5 (50/50), Horizontal = 7 (70/30), Vertical = 3 (30/70).
//
// Contract:
//
//   - Every edge handed to NewSupplier is returned exactly once.
//   - Only the order is random; it is fully determined by the *rand.Rand.
//
// Complexity:
//
//   - NewSupplier: O(n). Next, HasNext, Remaining: O(1).
package kruskal
