package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lanmesh/core"
)

// BenchmarkAddEdge_Ring measures bulk construction of a ring of N edges.
func BenchmarkAddEdge_Ring(b *testing.B) {
	const N = 10000

	b.ReportAllocs()
	b.SetBytes(int64(2 * N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for k := 0; k < N; k++ {
			_ = g.AddEdge(fmt.Sprintf("v%d", k), fmt.Sprintf("v%d", (k+1)%N))
		}
	}
}

// BenchmarkNeighborIDs_RandomSparse measures neighbor listing on a sparse
// random graph (sort dominates for high-degree hubs).
func BenchmarkNeighborIDs_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 20000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for k := 0; k < E; k++ {
		u := fmt.Sprintf("n%d", rnd.Intn(V))
		v := fmt.Sprintf("n%d", rnd.Intn(V))
		if u != v {
			_ = g.AddEdge(u, v)
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.NeighborIDs(fmt.Sprintf("n%d", i%V))
	}
}
