// Package clique finds a maximum clique — the largest set of pairwise
// adjacent nodes — in an undirected core.Graph via exact branch-and-bound.
//
// What
//
//   - Max: returns one maximum clique, members sorted lexicographically,
//     with a comma-joined String() form for the external boundary.
//   - WithOnImprove: a hook fired whenever the search commits a larger
//     incumbent, in case callers want progress visibility.
//
// Why
//
//	Maximum clique is NP-hard, so the search is exponential in the worst
//	case; what makes it tractable on real networks (hundreds of nodes,
//	thousands of edges) is disciplined pruning plus a branching order that
//	finds large cliques early, tightening the bound when it matters most.
//
// Algorithm
//
//	Vertices are indexed in lexicographic order and adjacency is
//	prefetched into a dense n×n buffer to keep the hot loop free of map
//	and interface overhead. Seeds are visited in descending-degree order
//	(index tiebreak): each seed v opens a branch with current = {v} and
//	candidates = neighbors of v indexed strictly after v, which guarantees
//	every maximal clique is generated exactly once, from its
//	lexicographically smallest member.
//
//	Within a branch, candidates live as an index window over one shared
//	arena slice: extending by a candidate appends the filtered
//	next-candidates to the arena tail and recurses on that window, so no
//	per-branch collection is reallocated. Before trying the candidate at
//	position i the bound is tested: if |current| plus the candidates
//	remaining from i onward cannot strictly exceed the incumbent, the
//	whole rest of the loop is abandoned. The incumbent is replaced only by
//	a strictly larger clique.
//
// Determinism
//
//	For a fixed edge set the returned clique is reproducible: seed order,
//	candidate order, and the strict-improvement rule are all fixed. When
//	several maximum cliques of equal size exist, which one wins is an
//	artifact of that order — any one of them is a correct answer.
//
// Complexity (n = |vertices|)
//
//   - Time:   exponential worst case; pruning governs practical cost.
//   - Memory: O(n²) for the dense adjacency prefetch, O(n + total arena
//     depth) for search state. Recursion depth ≤ |maximum clique|.
//
// Usage
//
//	res, err := clique.Max(g)
//	if err != nil {
//	    // ErrGraphNil
//	}
//	fmt.Println(res)          // e.g. "co,de,ka,ta"
//	fmt.Println(res.Members)  // e.g. [co de ka ta]
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil. An empty graph is not an
//     error: Max returns an empty Result.
package clique
