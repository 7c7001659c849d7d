// Package lvmaze generates perfect mazes on rectangular grids and solves them.
//
// A perfect maze is a spanning tree of the grid graph: every cell is reachable
// from every other cell by exactly one route. lvmaze builds one with a
// randomized Kruskal pass over the grid edges and walks it with depth-first or
// breadth-first search.
//
// Subpackages
//
//	deque/      generic double-ended list with a header sentinel and node handles
//	gridgraph/  cells, weighted neighbour edges, random candidate edges
//	unionfind/  disjoint-set forest used for cycle detection
//	kruskal/    spanning tree by ascending edge weight
//	traverse/   DFS and BFS over a tree, with visit order and path reconstruction
//	maze/       the facade: Generate, wall queries, cached solutions
//	cmd/mazegen command-line generator and ASCII renderer
//
// Quick start
//
//	m, err := maze.Build(20, 30, maze.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := m.Solution()
//	fmt.Println(m.HasRightWall(0, 0), len(path))
//
// None of the types are safe for concurrent mutation. After Generate has
// returned, a Maze may be read from several goroutines: the wall queries only
// read, and DepthFirst/BreadthFirst fill their per-generation cache once under
// a sync.Once. Generate itself must not overlap any other call.
package lvmaze
