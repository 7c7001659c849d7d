package traverse

import "github.com/katalvlaran/lvmaze/gridgraph"

// BFS searches tree breadth-first from start until goal is removed from the
// work-list. Neighbours are pushed at the head and removed from the tail, so
// vertices are processed in non-decreasing distance from start.
// Errors are as for DFS.
func BFS(tree []gridgraph.Edge, start, goal gridgraph.Vertex, opts ...Option) (*Result, error) {
	return run(tree, start, goal, fromTail, opts)
}
