// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ExampleGrid_CandidateEdges shows how a 2×3 grid enumerates its neighbour
// edges. Interior adjacencies appear once per direction by default and once
// per pair with Dedup.
func ExampleGrid_CandidateEdges() {
	g, err := gridgraph.NewGrid(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	all := g.CandidateEdges(gridgraph.NewRand(1), gridgraph.DefaultEdgeOptions())
	dedup := g.CandidateEdges(gridgraph.NewRand(1), gridgraph.EdgeOptions{Dedup: true})
	fmt.Println("vertices:", g.Len())
	fmt.Println("directional edges:", len(all))
	fmt.Println("unique pairs:", len(dedup))
	fmt.Println(dedup)

	// Output:
	// vertices: 6
	// directional edges: 14
	// unique pairs: 7
	// [1-0 3-0 2-1 4-1 5-2 4-3 5-4]
}
