// Package gridgraph models a rectangular grid of cells as a graph: every cell
// is a Vertex addressed both by its (x, y) coordinate and by a row-major
// integer ID, and every pair of axis-aligned neighbours is a candidate Edge
// carrying a random weight in [0, 1).
//
// What:
//
//   - Grid owns the immutable vertex list (IDs 0..Length*Width-1, row-major).
//   - CandidateEdges enumerates the weighted neighbour edges a spanning-tree
//     builder sorts and filters. By default each neighbour check produces its
//     own Edge, so interior adjacencies appear twice with independent weights;
//     EdgeOptions.Dedup keeps one edge per unordered pair.
//   - ConnectedComponents groups cells reachable through a given set of open
//     passages (edges).
//
// Why:
//
//   - Maze generation: a random minimum spanning tree over the candidate edges
//     is a perfect maze; the tree edges are open passages, everything else is wall.
//
// Complexity:
//
//   - NewGrid:             O(L×W) time and memory.
//   - CandidateEdges:      O(L×W), at most 4 edges per cell.
//   - ConnectedComponents: O(L×W + E).
//
// Randomness:
//
//	Weights are drawn from the *rand.Rand passed in. A nil generator falls
//	back to NewRand(0), which is deterministic.
//
// Errors:
//
//   - ErrEmptyGrid: length or width is not positive.
package gridgraph
