// Package unionfind provides a disjoint-set forest over integer vertex IDs,
// used to detect cycles while a spanning tree is built.
//
// What
//
//   - DisjointSet maps every registered ID to a parent ID. Following parents
//     always ends at a root whose parent is itself.
//   - Find walks parent links to the root. Union attaches the root of the
//     first argument under the root of the second; there is no union by rank
//     or size, so the result depends on argument order.
//   - WithPathCompression makes Find re-point every visited ID directly at the
//     root. Roots, and therefore every Find/Connected answer, are the same
//     with or without it; only the internal parent links differ.
//
// Complexity
//
//   - Plain: Find and Union are O(h) where h is the tree height, which can
//     grow to O(n) after adversarial unions. Fine for grids of tens by tens.
//   - Compressed: amortised close to O(log n) per operation.
//
// Errors
//
//   - ErrUnknownID: Find, Union or Connected on an ID that was never added.
//     This signals a construction bug in the caller; nothing is defaulted.
package unionfind
