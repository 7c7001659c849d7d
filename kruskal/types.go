// Package kruskal defines options and sentinel errors for spanning-tree construction.
package kruskal

import (
	"errors"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrNoVertices indicates that a spanning tree was requested over no vertices.
var ErrNoVertices = errors.New("kruskal: no vertices")

// ErrDisconnected indicates the candidate edges do not connect every vertex,
// so fewer than |V|-1 edges could be accepted.
var ErrDisconnected = errors.New("kruskal: candidate graph is disconnected")

// Options configures SpanningTree.
//
// Fields:
//
//	PathCompression  use the compressed union-find variant. The accepted
//	                 edge set is identical either way.
//	OnAccept         called for every edge added to the tree, in order.
//	OnReject         called for every edge discarded because it would close a cycle.
type Options struct {
	PathCompression bool
	OnAccept        func(e gridgraph.Edge)
	OnReject        func(e gridgraph.Edge)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with the plain forest and no-op hooks.
func DefaultOptions() Options {
	return Options{
		PathCompression: false,
		OnAccept:        func(gridgraph.Edge) {},
		OnReject:        func(gridgraph.Edge) {},
	}
}

// WithPathCompression selects the compressed union-find variant.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}

// WithOnAccept registers a callback for accepted edges.
func WithOnAccept(fn func(e gridgraph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnReject registers a callback for rejected edges.
func WithOnReject(fn func(e gridgraph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReject = fn
		}
	}
}
