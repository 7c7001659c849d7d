// Package traverse runs depth-first and breadth-first search over the edge
// set of a spanning tree, using a deque.Deque as the work-list, and
// reconstructs the path from a start vertex to a goal vertex through a
// predecessor map.
//
// What
//
//   - Neighbours are always pushed at the head of the work-list. DFS removes
//     from the head (stack discipline), BFS from the tail (queue discipline).
//     Nothing else differs between the two.
//   - Each pushed vertex carries the edge back to the vertex that pushed it;
//     that edge becomes its predecessor when the vertex is first removed.
//   - The search stops as soon as the goal is removed. Result.Order lists
//     every vertex in the order it was first removed, goal included.
//   - Result.Path runs start → goal inclusive. It is empty if the goal was
//     never reached; that is not an error.
//
// Determinism
//
//	Neighbours are pushed in tree-edge order, so for a fixed edge slice the
//	visit order and path are fully reproducible. On a tree there is exactly
//	one simple path between two vertices, so DFS and BFS return the same Path.
//
// Complexity (V = vertices touched, E = tree edges)
//
//   - Time:   O(V + E) plus the adjacency index build, O(E).
//   - Memory: O(V + E).
//
// Errors
//
//   - ErrStartNotInTree   start is not an endpoint of any edge (and is not
//     the goal of an edgeless single-cell tree).
//   - ErrNotReached       PathTo on a vertex the search never visited.
//   - any error returned by an OnVisit hook, wrapped.
package traverse
