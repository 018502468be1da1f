// Package triangles enumerates connected triples via the ordered
// a < b < c walk, so each triangle is visited exactly once.
package triangles

import "github.com/katalvlaran/lanmesh/core"

// Count returns the number of triangles in g whose members satisfy the
// configured predicate (all triangles by default).
//
// Returns ErrGraphNil for a nil graph.
func Count(g *core.Graph, opts ...Option) (int, error) {
	count := 0
	err := walk(g, opts, func(Triangle) { count++ })

	return count, err
}

// Enumerate returns the matching triangles themselves, in lexicographic
// tuple order.
//
// Returns ErrGraphNil for a nil graph.
func Enumerate(g *core.Graph, opts ...Option) ([]Triangle, error) {
	var out []Triangle
	err := walk(g, opts, func(t Triangle) { out = append(out, t) })

	return out, err
}

// walk performs the canonical ordered enumeration and invokes emit for
// every matching triangle.
//
// The ordering constraint is applied at both neighbor levels: b must sort
// after a, c after b. Combined with the closing HasEdge(a, c) test this
// visits each triangle exactly once, as its sorted tuple.
func walk(g *core.Graph, opts []Option, emit func(Triangle)) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, a := range g.Vertices() {
		for _, b := range g.NeighborIDs(a) {
			if b <= a {
				continue
			}
			for _, c := range g.NeighborIDs(b) {
				if c <= b || !g.HasEdge(a, c) {
					continue
				}
				t := Triangle{A: a, B: b, C: c}
				if o.Match(t) {
					emit(t)
				}
			}
		}
	}

	return nil
}
