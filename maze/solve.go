package maze

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/traverse"
)

// DepthFirst searches from Start to Goal depth-first and returns the visit
// order and the start → goal path. Results are cached until the next Generate.
// Returns ErrNotGenerated on an empty maze.
func (m *Maze) DepthFirst() (order, path []gridgraph.Vertex, err error) {
	st := m.st
	if st == nil {
		return nil, nil, ErrNotGenerated
	}

	return st.dfs.get(st, traverse.DFS)
}

// BreadthFirst searches from Start to Goal breadth-first and returns the
// visit order and the start → goal path. Results are cached until the next
// Generate. Returns ErrNotGenerated on an empty maze.
func (m *Maze) BreadthFirst() (order, path []gridgraph.Vertex, err error) {
	st := m.st
	if st == nil {
		return nil, nil, ErrNotGenerated
	}

	return st.bfs.get(st, traverse.BFS)
}

// Solution returns the start → goal path through the maze.
func (m *Maze) Solution() ([]gridgraph.Vertex, error) {
	_, path, err := m.DepthFirst()

	return path, err
}

type searchFunc func(tree []gridgraph.Edge, start, goal gridgraph.Vertex, opts ...traverse.Option) (*traverse.Result, error)

// cachedSearch runs one search at most once per generation. Concurrent
// callers block until the first run finishes and then share its result.
type cachedSearch struct {
	once sync.Once
	res  *traverse.Result
	err  error
}

// get runs fn over st on first use and returns copies of the cached result.
func (c *cachedSearch) get(st *state, fn searchFunc) (order, path []gridgraph.Vertex, err error) {
	c.once.Do(func() {
		c.res, c.err = fn(st.tree, st.start(), st.goal())
	})
	if c.err != nil {
		return nil, nil, c.err
	}

	return slices.Clone(c.res.Order), slices.Clone(c.res.Path), nil
}
