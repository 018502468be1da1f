// Package triangles counts and enumerates connected triples in an
// undirected core.Graph, optionally filtered by a member predicate.
//
// What
//
//   - Triangle: three mutually adjacent nodes in canonical sorted form
//     (A < B < C lexicographically).
//   - Count: the number of triangles whose member set satisfies the
//     configured predicate.
//   - Enumerate: the matching triangles themselves, in canonical order.
//   - WithAnyPrefix: the common "at least one member starts with X" rule
//     as a ready-made predicate.
//
// Why
//
//	Triangle census is the classic local-density probe of a network. The
//	ordered walk below touches each triangle exactly once, so no
//	deduplication set is needed and the count is independent of the order
//	in which the edge list was loaded.
//
// Algorithm
//
//	For every node a, for every neighbor b of a with b > a, for every
//	neighbor c of b with c > b: if a and c are adjacent, (a,b,c) is a
//	triangle. The two ordering constraints discard five of the six
//	orderings of each triple up front, and a < b < c makes the remaining
//	visit canonical.
//
// Determinism
//
//	core.Vertices and core.NeighborIDs are sorted, so Enumerate emits
//	triangles in lexicographic tuple order on every run.
//
// Complexity (n = |vertices|, d = max degree)
//
//   - Time:   O(n·d²) — bounded by the number of length-2 paths.
//   - Memory: O(1) for Count; O(T) for Enumerate with T matches.
//
// Usage
//
//	count, err := triangles.Count(g, triangles.WithAnyPrefix("t"))
//	if err != nil {
//	    // ErrGraphNil
//	}
//
//	all, _ := triangles.Enumerate(g) // every triangle, canonical order
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
package triangles
