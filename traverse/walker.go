package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/deque"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// discipline selects the end of the work-list items are removed from.
type discipline int

const (
	fromHead discipline = iota // stack: DFS
	fromTail                   // queue: BFS
)

// item is one work-list entry: a vertex plus the edge that led to it.
type item struct {
	v      gridgraph.Vertex
	via    gridgraph.Edge
	hasVia bool
}

// neighbor is one adjacency entry of the tree index.
type neighbor struct {
	v gridgraph.Vertex
	e gridgraph.Edge
}

// walker encapsulates mutable search state.
type walker struct {
	opts    Options
	take    discipline
	adj     map[int][]neighbor
	work    *deque.Deque[item]
	visited map[int]bool
	res     *Result
}

// run validates input, prepares the walker and executes the search.
func run(tree []gridgraph.Edge, start, goal gridgraph.Vertex, take discipline, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	adj := index(tree)
	if _, ok := adj[start.ID]; !ok && !(len(tree) == 0 && start.ID == goal.ID) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotInTree, start)
	}

	n := len(adj)
	if n == 0 {
		n = 1
	}
	w := &walker{
		opts:    o,
		take:    take,
		adj:     adj,
		work:    deque.New[item](),
		visited: make(map[int]bool, n),
		res: &Result{
			Start:  start,
			Goal:   goal,
			Order:  make([]gridgraph.Vertex, 0, n),
			Parent: make(map[int]gridgraph.Edge, n),
		},
	}
	w.work.AddAtHead(item{v: start})

	if err := w.loop(); err != nil {
		return w.res, err
	}
	if w.res.Found {
		path, err := w.res.PathTo(goal)
		if err != nil {
			return w.res, err
		}
		w.res.Path = path
	} else {
		w.res.Path = []gridgraph.Vertex{}
	}

	return w.res, nil
}

// index builds an adjacency list from tree edges, keeping edge order.
func index(tree []gridgraph.Edge) map[int][]neighbor {
	adj := make(map[int][]neighbor, len(tree)+1)
	for _, e := range tree {
		adj[e.A.ID] = append(adj[e.A.ID], neighbor{v: e.B, e: e})
		adj[e.B.ID] = append(adj[e.B.ID], neighbor{v: e.A, e: e})
	}

	return adj
}

// loop processes the work-list until it is empty, the goal is reached, or a hook fails.
func (w *walker) loop() error {
	for w.work.Len() > 0 {
		it, err := w.remove()
		if err != nil {
			return err
		}
		if w.visited[it.v.ID] {
			continue
		}
		if err = w.visit(it); err != nil {
			return err
		}
		if it.v.ID == w.res.Goal.ID {
			w.res.Found = true
			return nil
		}
		w.push(it.v)
	}

	return nil
}

// remove pops the next item according to the discipline.
func (w *walker) remove() (item, error) {
	var (
		it  item
		err error
	)
	if w.take == fromHead {
		it, err = w.work.RemoveFromHead()
	} else {
		it, err = w.work.RemoveFromTail()
	}
	if err != nil {
		return item{}, fmt.Errorf("traverse: work-list: %w", err)
	}

	return it, nil
}

// visit marks the vertex, records order and predecessor, and calls OnVisit.
func (w *walker) visit(it item) error {
	w.visited[it.v.ID] = true
	w.res.Order = append(w.res.Order, it.v)
	if it.hasVia {
		w.res.Parent[it.v.ID] = it.via
	}
	if err := w.opts.OnVisit(it.v); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", it.v, err)
	}

	return nil
}

// push adds every unvisited tree neighbour of v at the head of the work-list.
func (w *walker) push(v gridgraph.Vertex) {
	for _, nb := range w.adj[v.ID] {
		if w.visited[nb.v.ID] {
			continue
		}
		w.work.AddAtHead(item{
			v:      nb.v,
			via:    gridgraph.Edge{A: v, B: nb.v, Weight: nb.e.Weight},
			hasVia: true,
		})
		w.opts.OnEnqueue(nb.v)
	}
}
