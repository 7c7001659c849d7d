// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvmaze.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
)

// Vertex is one grid cell. ID is unique within its Grid and assigned in
// row-major scan order starting at 0; X is the column and Y the row.
// Vertices are plain values and never change after the grid is built.
type Vertex struct {
	ID   int
	X, Y int
}

// String renders the vertex as "id(x,y)".
func (v Vertex) String() string {
	return fmt.Sprintf("%d(%d,%d)", v.ID, v.X, v.Y)
}

// Edge is an unordered pair of vertices with a weight fixed at construction.
// A and B record the enumeration order only; every query treats the pair
// symmetrically.
type Edge struct {
	A, B   Vertex
	Weight float64
}

// Has reports whether v is one of the endpoints.
func (e Edge) Has(v Vertex) bool {
	return e.A.ID == v.ID || e.B.ID == v.ID
}

// Joins reports whether the edge connects u and v, in either direction.
func (e Edge) Joins(u, v Vertex) bool {
	return (e.A.ID == u.ID && e.B.ID == v.ID) || (e.A.ID == v.ID && e.B.ID == u.ID)
}

// Other returns the endpoint opposite v. ok is false if v is not an endpoint.
func (e Edge) Other(v Vertex) (w Vertex, ok bool) {
	switch v.ID {
	case e.A.ID:
		return e.B, true
	case e.B.ID:
		return e.A, true
	default:
		return Vertex{}, false
	}
}

// String renders the edge as "a-b".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A.ID, e.B.ID)
}

// EdgeOptions tunes candidate-edge enumeration.
type EdgeOptions struct {
	// Dedup emits a single edge per unordered neighbour pair (right and down
	// checks only) instead of one edge per directional check.
	Dedup bool
}

// DefaultEdgeOptions returns EdgeOptions with Dedup disabled, so every
// directional neighbour check contributes its own independently weighted edge.
func DefaultEdgeOptions() EdgeOptions {
	return EdgeOptions{Dedup: false}
}

// Grid is a Length×Width rectangle of vertices. It is immutable once built.
// Length is the number of rows, Width the number of columns.
type Grid struct {
	Length, Width   int
	vertices        []Vertex
	neighborOffsets [][2]int
}
