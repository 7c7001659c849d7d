package unionfind

import "fmt"

// DisjointSet is a parent-pointer forest keyed by ID.
// It is not safe for concurrent use.
type DisjointSet struct {
	parent   map[int]int
	compress bool
	roots    int
}

var _ Forest = (*DisjointSet)(nil)

// New returns a DisjointSet with every id in ids registered as its own root.
// Duplicate ids are registered once.
func New(ids []int, opts ...Option) *DisjointSet {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ds := &DisjointSet{
		parent:   make(map[int]int, len(ids)),
		compress: o.PathCompression,
	}
	for _, id := range ids {
		ds.Add(id)
	}

	return ds
}

// Add registers id as a singleton set. Adding an existing id is a no-op.
func (ds *DisjointSet) Add(id int) {
	if _, ok := ds.parent[id]; ok {
		return
	}
	ds.parent[id] = id
	ds.roots++
}

// Len returns the number of registered IDs.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Sets returns the number of disjoint sets.
func (ds *DisjointSet) Sets() int {
	return ds.roots
}

// Parent returns the stored parent of id without walking to the root.
func (ds *DisjointSet) Parent(id int) (int, error) {
	p, ok := ds.parent[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	return p, nil
}

// Find follows parent links from id until it reaches an ID that is its own
// parent and returns it. Returns ErrUnknownID if id, or any ID on its parent
// chain, is not registered.
func (ds *DisjointSet) Find(id int) (int, error) {
	root := id
	for {
		p, ok := ds.parent[root]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownID, root)
		}
		if p == root {
			break
		}
		root = p
	}
	if ds.compress {
		for cur := id; cur != root; {
			next := ds.parent[cur]
			ds.parent[cur] = root
			cur = next
		}
	}

	return root, nil
}

// Union sets the parent of Find(a) to Find(b), attaching a's whole tree under
// b's root. Union of two IDs already in one set changes nothing.
func (ds *DisjointSet) Union(a, b int) error {
	ra, err := ds.Find(a)
	if err != nil {
		return err
	}
	rb, err := ds.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	ds.parent[ra] = rb
	ds.roots--

	return nil
}

// Connected reports whether a and b share a root.
func (ds *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := ds.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := ds.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}
