package core_test

import (
	"fmt"

	"github.com/katalvlaran/lanmesh/core"
)

// ExampleGraph_NeighborIDs builds a small square network and shows the
// deterministic sorted neighbor listing, including the empty result for a
// node the graph has never seen.
func ExampleGraph_NeighborIDs() {
	//	    ka───ta
	//	     │    │
	//	    co───de
	g := core.NewGraph()
	g.AddEdge("ka", "ta")
	g.AddEdge("ta", "de")
	g.AddEdge("de", "co")
	g.AddEdge("co", "ka")

	fmt.Println(g.NeighborIDs("ka"))
	fmt.Println(g.NeighborIDs("nobody"))
	fmt.Println(g.HasEdge("ka", "de"))
	// Output:
	// [co ta]
	// []
	// false
}
