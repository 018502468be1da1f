// Package clique — exact maximum-clique search via branch-and-bound with
// a degree-ordered seed schedule and an arena-backed candidate stack.
package clique

import (
	"sort"

	"github.com/katalvlaran/lanmesh/core"
)

// engine holds all search data. A dedicated struct (instead of closures
// over Max's locals) keeps hot-path state predictable and the pieces
// independently testable.
type engine struct {
	n   int
	ids []string // index → node ID, lexicographic asc

	// Dense adjacency prefetch: adj[u*n+v]. Removes map lookups from the
	// innermost candidate-filtering loop.
	adj []bool

	// nbrs[v] lists the neighbor indices of v, ascending. Used only for
	// seeding; inside branches adjacency is tested via the dense buffer.
	nbrs [][]int

	// order is the seed schedule: descending degree, index tiebreak.
	// High-degree seeds tend to grow large cliques early, which tightens
	// the pruning bound for every later branch.
	order []int

	// arena is the shared candidate buffer. Each branch owns the window
	// arena[lo:hi) and appends its filtered next-candidates at the tail,
	// truncating on backtrack, so branching never reallocates a
	// candidate collection.
	arena []int

	// current is the clique under construction; indices ascend because
	// candidates are always indexed after the last-added member.
	current []int

	// best is the incumbent, replaced only by a strictly larger clique.
	best []int

	onImprove func(members []string)
}

// at reports adjacency between vertex indices u and v.
func (e *engine) at(u, v int) bool { return e.adj[u*e.n+v] }

// prefetch builds the index mapping, dense adjacency, and neighbor lists.
func (e *engine) prefetch(g *core.Graph) {
	e.ids = g.Vertices()
	e.n = len(e.ids)
	e.adj = make([]bool, e.n*e.n)
	e.nbrs = make([][]int, e.n)

	index := make(map[string]int, e.n)
	for i, id := range e.ids {
		index[id] = i
	}
	var row []int
	for v, id := range e.ids {
		nbrIDs := g.NeighborIDs(id)
		row = make([]int, 0, len(nbrIDs))
		for _, nid := range nbrIDs {
			u := index[nid]
			e.adj[v*e.n+u] = true
			row = append(row, u)
		}
		// NeighborIDs is sorted lex asc and ids is lex asc, so row is
		// already ascending.
		e.nbrs[v] = row
	}
}

// buildOrder produces the seed schedule: descending degree, ascending
// index on ties. Deterministic, so runs are reproducible.
func (e *engine) buildOrder() {
	e.order = make([]int, e.n)
	for i := range e.order {
		e.order[i] = i
	}
	sort.SliceStable(e.order, func(a, b int) bool {
		da, db := len(e.nbrs[e.order[a]]), len(e.nbrs[e.order[b]])
		if da != db {
			return da > db
		}

		return e.order[a] < e.order[b]
	})
}

// commit records the current clique as the new incumbent.
// Caller guarantees it is strictly larger than best.
func (e *engine) commit() {
	e.best = append(e.best[:0], e.current...)
	e.onImprove(e.memberIDs(e.best))
}

// memberIDs maps vertex indices to sorted node IDs in a fresh slice.
func (e *engine) memberIDs(clq []int) []string {
	members := make([]string, len(clq))
	for i, v := range clq {
		members[i] = e.ids[v]
	}
	// Indices ascend and ids is lex-sorted, so members already ascend;
	// sort anyway to keep the presentation contract independent of the
	// search internals.
	sort.Strings(members)

	return members
}

// dfs explores the branch whose candidates occupy arena[lo:hi).
//
// Candidates are tried left to right. Before candidate i, the bound is
// tested: current plus every remaining candidate from i onward is the
// best this loop can possibly reach (membership already requires full
// adjacency to current), so if that total cannot strictly exceed the
// incumbent the rest of the loop is abandoned in one step.
func (e *engine) dfs(lo, hi int) {
	if lo == hi {
		// Terminal: no candidate extends the current clique.
		if len(e.current) > len(e.best) {
			e.commit()
		}

		return
	}

	var v, i, j, nextLo int
	for i = lo; i < hi; i++ {
		if len(e.current)+(hi-i) <= len(e.best) {
			return // bound: even taking every remaining candidate cannot beat best
		}
		v = e.arena[i]

		// Next candidates: the later candidates of this window that are
		// also adjacent to v, appended at the arena tail.
		nextLo = len(e.arena)
		for j = i + 1; j < hi; j++ {
			if e.at(v, e.arena[j]) {
				e.arena = append(e.arena, e.arena[j])
			}
		}

		e.current = append(e.current, v)
		e.dfs(nextLo, len(e.arena))
		e.current = e.current[:len(e.current)-1]
		e.arena = e.arena[:nextLo]
	}
}

// Max returns one maximum clique of g.
//
// An empty graph yields an empty Result; a graph with vertices but no
// edges yields a size-1 clique. Members are sorted lex asc; see Result.
//
// Returns ErrGraphNil for a nil graph.
func Max(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var e engine
	e.onImprove = o.OnImprove
	e.prefetch(g)
	if e.n == 0 {
		return Result{}, nil
	}
	e.buildOrder()
	e.arena = make([]int, 0, e.n)
	e.current = make([]int, 0, e.n)

	var s, u int
	for _, s = range e.order {
		// Seed candidates: neighbors indexed strictly after s. Every
		// maximal clique is thus generated exactly once, from its
		// lexicographically smallest member.
		e.arena = e.arena[:0]
		for _, u = range e.nbrs[s] {
			if u > s {
				e.arena = append(e.arena, u)
			}
		}
		// Seed-level bound: this branch tops out at 1+len(candidates).
		if 1+len(e.arena) <= len(e.best) {
			continue
		}
		e.current = append(e.current[:0], s)
		e.dfs(0, len(e.arena))
	}
	e.current = e.current[:0]

	return Result{Members: e.memberIDs(e.best)}, nil
}
