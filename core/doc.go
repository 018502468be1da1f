// Package core provides the undirected simple Graph every other lanmesh
// package queries: built once from an edge list, read-only for the rest
// of the run.
//
// What
//
//   - Graph: a mapping from node ID to its neighbor set, with vertex and
//     edge bookkeeping.
//   - AddVertex / AddEdge: the only mutators. AddEdge inserts both
//     directions at once, so the symmetry invariant (b ∈ N(a) ⇔ a ∈ N(b))
//     holds for every loaded edge by construction.
//   - HasVertex / HasEdge / Degree / NeighborIDs / Vertices: pure queries.
//     Unknown nodes are valid input everywhere: NeighborIDs returns an
//     empty slice and Degree returns 0 (isolated-node semantics), never
//     an error.
//
// Why
//
//   - Triangle census and clique search both reduce to two primitives:
//     "who are the neighbors of v" and "are u and v adjacent". Keeping
//     those primitives in one place, with deterministic sorted output,
//     makes the algorithm packages short and their runs reproducible.
//
// Model
//
//	The graph is a simple undirected graph: no self-loops (AddEdge
//	rejects them), no parallel edges (neighbor sets deduplicate), no
//	weights, no direction. There are no removal APIs — once the caller
//	stops adding, the Graph is effectively immutable and may be shared
//	across goroutines without locking.
//
// Determinism
//
//	NeighborIDs and Vertices return freshly allocated slices sorted
//	lexicographically ascending, so iteration order never depends on Go
//	map ordering.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddEdge / HasEdge / Degree: O(1) average.
//   - NeighborIDs(v): O(d log d) for degree d.
//   - Vertices: O(V log V).
//   - Memory: O(V + E).
//
// Usage
//
//	g := core.NewGraph()
//	if err := g.AddEdge("ka", "ta"); err != nil { ... }
//	if err := g.AddEdge("ta", "co"); err != nil { ... }
//
//	g.HasEdge("ka", "ta")    // true
//	g.NeighborIDs("ta")      // ["co" "ka"]
//	g.NeighborIDs("nobody")  // [] — unknown node, not an error
//
// Errors
//
//   - ErrEmptyVertexID  if a vertex or edge endpoint ID is "".
//   - ErrSelfLoop       if AddEdge is called with equal endpoints.
package core
