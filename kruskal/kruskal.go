// Package kruskal provides an implementation of Kruskal's spanning-tree
// algorithm over grid edges.
package kruskal

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// SpanningTree returns the edges Kruskal's algorithm accepts from candidates,
// in acceptance order. Every vertex is registered in a fresh union-find
// forest; candidates are sorted by ascending weight and drained one by one.
//
// Error Conditions:
//   - ErrNoVertices   : vertices is empty.
//   - ErrDisconnected : the accepted set has fewer than |V|-1 edges, counting
//     each distinct vertex ID once.
//   - unionfind.ErrUnknownID : a candidate endpoint is not among vertices.
//
// Complexity: O(E log E + E·h). Memory: O(V + E).
func SpanningTree(vertices []gridgraph.Vertex, candidates []gridgraph.Edge, opts ...Option) ([]gridgraph.Edge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate.
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	// 2. Register every vertex as its own set.
	ids := make([]int, len(vertices))
	for i, v := range vertices {
		ids[i] = v.ID
	}
	var ufOpts []unionfind.Option
	if o.PathCompression {
		ufOpts = append(ufOpts, unionfind.WithPathCompression())
	}
	forest := unionfind.New(ids, ufOpts...)

	// 3. Sort the work-list.
	work := SortByWeight(candidates)

	// 4. Drain it, lowest weight first.
	want := forest.Len() - 1 // duplicate vertices are registered once
	tree := make([]gridgraph.Edge, 0, want)
	for len(work) > 0 {
		e := work[0]
		work = work[1:]

		joined, err := forest.Connected(e.A.ID, e.B.ID)
		if err != nil {
			return nil, fmt.Errorf("kruskal: edge %v: %w", e, err)
		}
		if joined {
			o.OnReject(e)
			continue
		}
		if err = forest.Union(e.A.ID, e.B.ID); err != nil {
			return nil, fmt.Errorf("kruskal: edge %v: %w", e, err)
		}
		tree = append(tree, e)
		o.OnAccept(e)
	}

	// 5. A spanning tree has exactly |V|-1 edges.
	if len(tree) != want {
		return nil, fmt.Errorf("%w: accepted %d of %d edges", ErrDisconnected, len(tree), want)
	}

	return tree, nil
}

// SortByWeight returns a copy of edges stable-sorted by ascending weight.
func SortByWeight(edges []gridgraph.Edge) []gridgraph.Edge {
	work := slices.Clone(edges)
	slices.SortStableFunc(work, func(a, b gridgraph.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	return work
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []gridgraph.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
