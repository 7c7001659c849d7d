// Package maze is the facade a presentation layer talks to. It owns one
// grid, the spanning tree generated over it and cached search results, and
// exposes them through query methods.
//
// What
//
//   - Generate(length, width, rng) builds a fresh grid, enumerates candidate
//     edges with random weights, runs Kruskal over them and swaps the new
//     state in with a single assignment. Nothing from a previous generation
//     survives.
//   - HasRightWall / HasDownWall / CanTraverse answer wall questions for a
//     renderer or a movement controller.
//   - DepthFirst / BreadthFirst search from vertex 0 (top-left) to vertex
//     V-1 (bottom-right) and return the visit order and the path. Results are
//     cached until the next Generate.
//   - FromSpanningTree builds a maze around a caller-supplied tree, which is
//     how fixed layouts are loaded.
//
// Randomness
//
//	Each Maze holds its own *rand.Rand (WithRand, or NewRand(seed) from
//	WithSeed; seed 0 means the default seed). Generate consumes it unless an
//	explicit generator is passed. The same seed and sizes always give the
//	same maze.
//
// Candidate edges
//
//	By default every directional neighbour check produces its own edge, so
//	most adjacencies compete twice in the sort. WithDedupEdges keeps one
//	edge per pair. Both produce perfect mazes; for a given seed the layouts
//	differ.
//
// Concurrency
//
//	Generate must not overlap any other call on the same Maze. Between
//	generations, queries and searches may run from several goroutines; each
//	search result is computed once per generation and shared.
package maze
