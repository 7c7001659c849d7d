// Package gridgraph provides the grid-backed vertex and edge model used to
// build mazes. See doc.go for an overview.
package gridgraph

import (
	"fmt"
	"math/rand"
)

// NewGrid builds a grid of length rows and width columns and assigns vertex
// IDs in row-major order. Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(L×W) time and memory.
func NewGrid(length, width int) (*Grid, error) {
	if length <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, length, width)
	}
	vertices := make([]Vertex, 0, length*width)
	id := 0
	for y := 0; y < length; y++ {
		for x := 0; x < width; x++ {
			vertices = append(vertices, Vertex{ID: id, X: x, Y: y})
			id++
		}
	}
	g := &Grid{
		Length:   length,
		Width:    width,
		vertices: vertices,
		// left, right, up, down
		neighborOffsets: [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	}

	return g, nil
}

// Len returns the number of vertices, Length×Width.
func (g *Grid) Len() int {
	return len(g.vertices)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Length
}

// NeighborOffsets returns the (dx,dy) offsets checked for every cell, in
// enumeration order: left, right, up, down.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// VertexAt returns the vertex at (x,y); ok is false when out of bounds.
func (g *Grid) VertexAt(x, y int) (v Vertex, ok bool) {
	if !g.InBounds(x, y) {
		return Vertex{}, false
	}

	return g.vertices[g.index(x, y)], true
}

// Vertex returns the vertex with the given ID; ok is false when no such vertex exists.
func (g *Grid) Vertex(id int) (v Vertex, ok bool) {
	if id < 0 || id >= len(g.vertices) {
		return Vertex{}, false
	}

	return g.vertices[id], true
}

// Vertices returns a copy of all vertices in ID order.
func (g *Grid) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// IDs returns every vertex ID in ascending order.
func (g *Grid) IDs() []int {
	ids := make([]int, len(g.vertices))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Adjacent reports whether u and v are axis-aligned neighbours.
func (g *Grid) Adjacent(u, v Vertex) bool {
	dx, dy := u.X-v.X, u.Y-v.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

// Contains reports whether v is a vertex of this grid, comparing ID and coordinates.
func (g *Grid) Contains(v Vertex) bool {
	w, ok := g.Vertex(v.ID)

	return ok && w == v
}

// CandidateEdges enumerates weighted neighbour edges in row-major cell order.
// For each cell the left, right, up and down neighbours are checked in that
// order and every in-bounds neighbour n yields Edge{A: n, B: cell} with a
// weight drawn from rng.Float64(). With opts.Dedup only the right and down
// checks are made, so each unordered pair appears once.
//
// A nil rng is replaced by NewRand(0).
// Complexity: O(L×W).
func (g *Grid) CandidateEdges(rng *rand.Rand, opts EdgeOptions) []Edge {
	if rng == nil {
		rng = NewRand(0)
	}
	perCell := 4
	if opts.Dedup {
		perCell = 2
	}
	edges := make([]Edge, 0, len(g.vertices)*perCell)
	for _, cell := range g.vertices {
		for _, d := range g.neighborOffsets {
			if opts.Dedup && (d[0] < 0 || d[1] < 0) {
				continue
			}
			n, ok := g.VertexAt(cell.X+d[0], cell.Y+d[1])
			if !ok {
				continue
			}
			edges = append(edges, Edge{A: n, B: cell, Weight: rng.Float64()})
		}
	}

	return edges
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
