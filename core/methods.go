package core

import "sort"

// AddVertex registers id as a node, with no incident edges yet.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensureVertex(id)

	return nil
}

// AddEdge inserts the undirected edge {u,v}, creating both endpoints if
// they are new. Both adjacency directions are written, so symmetry holds
// for every edge by construction. Re-adding an existing edge is a no-op
// (neighbor sets deduplicate).
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrSelfLoop      if u == v.
//
// Complexity: O(1) average.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, dup := g.adjacency[u][v]; dup {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id is a known node.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Unknown endpoints simply yield false, never an error.
// By the symmetry invariant HasEdge(u, v) == HasEdge(v, u).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// NeighborIDs returns the unique nodes adjacent to id, sorted
// lexicographically ascending. An unknown or isolated id yields an empty
// slice (isolated-node semantics). The returned slice is freshly
// allocated and safe to retain.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) NeighborIDs(id string) []string {
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Degree returns the number of neighbors of id; 0 for unknown nodes.
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// Vertices returns every known node ID, sorted lexicographically ascending.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of known nodes.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges, each unordered pair
// counted once.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ensureVertex initializes bookkeeping for id; no-op when already known.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})
}
