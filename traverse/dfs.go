package traverse

import "github.com/katalvlaran/lvmaze/gridgraph"

// DFS searches tree depth-first from start until goal is removed from the
// work-list. Neighbours are pushed at the head and removed from the head.
// Returns ErrStartNotInTree for an invalid start or any OnVisit hook error;
// on a hook error the partial Result is returned alongside it.
func DFS(tree []gridgraph.Edge, start, goal gridgraph.Vertex, opts ...Option) (*Result, error) {
	return run(tree, start, goal, fromHead, opts)
}
