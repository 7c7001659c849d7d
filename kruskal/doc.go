// Package kruskal builds a random spanning tree over grid candidate edges
// with Kruskal's algorithm. Fed with uniformly weighted grid edges, the
// resulting tree is a perfect maze: its edges are open passages and every
// other neighbour pair is separated by a wall.
//
// Algorithm
//
//  1. Copy the candidate edges into a work-list and stable-sort it ascending
//     by weight (equal weights keep enumeration order).
//  2. Pop the lowest-weight edge. If its endpoints have different union-find
//     roots, accept it and union the endpoints; otherwise discard it.
//  3. Repeat until the work-list is empty.
//
// The work-list is always drained completely, so hooks observe every
// candidate, including those rejected after the tree is already complete.
//
// Complexity
//
//	Time: O(E log E) for the sort plus E Find calls, each O(h) on the plain
//	forest (see unionfind). Memory: O(V + E).
//
// Errors
//
//   - ErrNoVertices      the vertex list is empty.
//   - ErrDisconnected    fewer than |V|-1 edges were accepted.
//   - unionfind.ErrUnknownID (wrapped) when an edge names a vertex not in the list.
package kruskal
