// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/kruskal"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// Maze owns one generation of a maze: the grid, its spanning tree and
// cached search results. The zero value is not usable; call New.
type Maze struct {
	opts Options
	rng  *rand.Rand
	st   *state
}

// state is everything that one Generate call produces. It is replaced as a
// whole, never patched; only the search caches fill in later.
type state struct {
	grid     *gridgraph.Grid
	tree     []gridgraph.Edge
	passages map[[2]int]struct{}
	dfs, bfs cachedSearch
}

// New returns an empty Maze configured by opts. Call Generate before
// querying it.
func New(opts ...Option) *Maze {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = gridgraph.NewRand(o.Seed)
	}

	return &Maze{opts: o, rng: rng}
}

// Build is New followed by Generate(length, width, nil).
func Build(length, width int, opts ...Option) (*Maze, error) {
	m := New(opts...)
	if err := m.Generate(length, width, nil); err != nil {
		return nil, err
	}

	return m, nil
}

// FromSpanningTree builds a maze of the given size whose passages are
// exactly tree. Every edge must join two adjacent vertices of the grid, the
// edges must be acyclic and there must be Length×Width-1 of them.
// Returns gridgraph.ErrEmptyGrid for bad dimensions and ErrNotSpanningTree
// otherwise.
func FromSpanningTree(length, width int, tree []gridgraph.Edge, opts ...Option) (*Maze, error) {
	m := New(opts...)
	grid, err := gridgraph.NewGrid(length, width)
	if err != nil {
		return nil, err
	}

	forest := unionfind.New(grid.IDs())
	for _, e := range tree {
		if !grid.Contains(e.A) || !grid.Contains(e.B) {
			return nil, fmt.Errorf("%w: edge %v leaves the %d×%d grid", ErrNotSpanningTree, e, length, width)
		}
		if !grid.Adjacent(e.A, e.B) {
			return nil, fmt.Errorf("%w: edge %v joins non-adjacent cells", ErrNotSpanningTree, e)
		}
		joined, err := forest.Connected(e.A.ID, e.B.ID)
		if err != nil {
			return nil, err
		}
		if joined {
			return nil, fmt.Errorf("%w: edge %v closes a cycle", ErrNotSpanningTree, e)
		}
		if err = forest.Union(e.A.ID, e.B.ID); err != nil {
			return nil, err
		}
	}
	if len(tree) != grid.Len()-1 {
		return nil, fmt.Errorf("%w: %d edges for %d cells", ErrNotSpanningTree, len(tree), grid.Len())
	}

	m.st = newState(grid, slices.Clone(tree))

	return m, nil
}

// Generate replaces the maze with a freshly generated one of length rows and
// width columns. If rng is nil the maze's own generator is used.
// Returns gridgraph.ErrEmptyGrid for non-positive dimensions, in which case
// the previous maze is left untouched.
func (m *Maze) Generate(length, width int, rng *rand.Rand) error {
	if rng == nil {
		rng = m.rng
	}
	grid, err := gridgraph.NewGrid(length, width)
	if err != nil {
		return fmt.Errorf("maze: generate: %w", err)
	}

	candidates := grid.CandidateEdges(rng, gridgraph.EdgeOptions{Dedup: m.opts.DedupEdges})
	var kopts []kruskal.Option
	if m.opts.PathCompression {
		kopts = append(kopts, kruskal.WithPathCompression())
	}
	tree, err := kruskal.SpanningTree(grid.Vertices(), candidates, kopts...)
	if err != nil {
		return fmt.Errorf("maze: generate: %w", err)
	}

	m.st = newState(grid, tree)

	return nil
}

// newState indexes tree passages for O(1) wall queries.
func newState(grid *gridgraph.Grid, tree []gridgraph.Edge) *state {
	passages := make(map[[2]int]struct{}, len(tree))
	for _, e := range tree {
		passages[pairKey(e.A.ID, e.B.ID)] = struct{}{}
	}

	return &state{grid: grid, tree: tree, passages: passages}
}

// Generated reports whether the maze holds a grid.
func (m *Maze) Generated() bool {
	return m.st != nil
}

// Length returns the number of rows, 0 before generation.
func (m *Maze) Length() int {
	if m.st == nil {
		return 0
	}

	return m.st.grid.Length
}

// Width returns the number of columns, 0 before generation.
func (m *Maze) Width() int {
	if m.st == nil {
		return 0
	}

	return m.st.grid.Width
}

// Vertices returns every cell in ID order.
func (m *Maze) Vertices() []gridgraph.Vertex {
	if m.st == nil {
		return nil
	}

	return m.st.grid.Vertices()
}

// SpanningTree returns a copy of the accepted edges in acceptance order.
func (m *Maze) SpanningTree() []gridgraph.Edge {
	if m.st == nil {
		return nil
	}

	return slices.Clone(m.st.tree)
}

// Start returns vertex 0, the top-left cell.
func (m *Maze) Start() (gridgraph.Vertex, bool) {
	if m.st == nil {
		return gridgraph.Vertex{}, false
	}

	return m.st.start(), true
}

// Goal returns vertex V-1, the bottom-right cell.
func (m *Maze) Goal() (gridgraph.Vertex, bool) {
	if m.st == nil {
		return gridgraph.Vertex{}, false
	}

	return m.st.goal(), true
}

func (st *state) start() gridgraph.Vertex {
	v, _ := st.grid.Vertex(0)

	return v
}

func (st *state) goal() gridgraph.Vertex {
	v, _ := st.grid.Vertex(st.grid.Len() - 1)

	return v
}

// pairKey normalises an unordered ID pair.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
