package unionfind

import "errors"

// ErrUnknownID is returned when an operation names an ID that was never added.
var ErrUnknownID = errors.New("unionfind: unknown id")

// Forest is the contract a spanning-tree builder needs from a disjoint-set
// structure.
type Forest interface {
	// Find returns the root ID of the set containing id.
	Find(id int) (int, error)
	// Union merges the set of a into the set of b.
	Union(a, b int) error
}

// Options configures a DisjointSet.
type Options struct {
	// PathCompression re-points visited IDs at their root during Find.
	PathCompression bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the plain parent-pointer model: no compression.
func DefaultOptions() Options {
	return Options{PathCompression: false}
}

// WithPathCompression enables path compression in Find.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}
