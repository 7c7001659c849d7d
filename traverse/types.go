// Package traverse defines options, sentinel errors and the result type for
// tree search.
package traverse

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Sentinel errors for traversal.
var (
	// ErrStartNotInTree is returned when the start vertex touches no tree edge.
	ErrStartNotInTree = errors.New("traverse: start vertex not in tree")

	// ErrNotReached is returned by PathTo for a vertex the search never visited.
	ErrNotReached = errors.New("traverse: vertex not reached")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds hooks invoked during a search.
type Options struct {
	// OnVisit is called when a vertex is removed from the work-list for the
	// first time. Returning an error aborts the search.
	OnVisit func(v gridgraph.Vertex) error

	// OnEnqueue is called each time a vertex is pushed onto the work-list.
	OnEnqueue func(v gridgraph.Vertex)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(gridgraph.Vertex) error { return nil },
		OnEnqueue: func(gridgraph.Vertex) {},
	}
}

// WithOnVisit registers a callback to run on first visit; returning an error
// from it stops the search.
func WithOnVisit(fn func(v gridgraph.Vertex) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on every push.
func WithOnEnqueue(fn func(v gridgraph.Vertex)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Order:  vertices in the order they were first removed from the work-list.
//   - Parent: vertex ID → edge through which it was first reached, oriented
//     predecessor (A) to vertex (B). The start vertex has no entry.
//   - Path:   start → goal inclusive, or empty if the goal was not reached.
type Result struct {
	Start, Goal gridgraph.Vertex
	Order       []gridgraph.Vertex
	Parent      map[int]gridgraph.Edge
	Path        []gridgraph.Vertex
	Found       bool
}

// Visited reports whether v was removed from the work-list during the search.
func (r *Result) Visited(v gridgraph.Vertex) bool {
	if v.ID == r.Start.ID {
		return len(r.Order) > 0
	}
	_, ok := r.Parent[v.ID]

	return ok
}

// PathTo reconstructs the path from the start vertex to dest by following
// predecessor edges backwards. Returns ErrNotReached if dest was not visited.
func (r *Result) PathTo(dest gridgraph.Vertex) ([]gridgraph.Vertex, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []gridgraph.Vertex{dest}
	for cur := dest.ID; ; {
		e, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, e.A)
		cur = e.A.ID
	}
	slices.Reverse(path)

	return path, nil
}
