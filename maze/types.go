// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze operations.
var (
	// ErrNotGenerated is returned by searches on a maze that has no grid yet.
	ErrNotGenerated = errors.New("maze: not generated")

	// ErrNotSpanningTree is returned by FromSpanningTree when the supplied
	// edges do not form a spanning tree of the grid.
	ErrNotSpanningTree = errors.New("maze: edges do not form a spanning tree")
)

// Options configures a Maze.
type Options struct {
	// Seed feeds the maze's generator when Rand is nil; 0 selects the default seed.
	Seed int64

	// Rand, if non-nil, is used instead of a seeded generator.
	Rand *rand.Rand

	// DedupEdges emits one candidate edge per neighbour pair.
	DedupEdges bool

	// PathCompression selects the compressed union-find during generation.
	PathCompression bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with seed 0, directional candidate edges and
// the plain union-find.
func DefaultOptions() Options {
	return Options{
		Seed:            0,
		Rand:            nil,
		DedupEdges:      false,
		PathCompression: false,
	}
}

// WithSeed sets the seed of the maze's generator.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the generator directly. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithDedupEdges enumerates a single candidate edge per neighbour pair.
func WithDedupEdges() Option {
	return func(o *Options) {
		o.DedupEdges = true
	}
}

// WithPathCompression selects the compressed union-find variant.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}
