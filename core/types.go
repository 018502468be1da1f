// Package core defines the Graph type and sentinel errors shared by the
// lanmesh analysis packages.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a vertex or edge endpoint ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrSelfLoop indicates AddEdge was called with two equal endpoints.
	ErrSelfLoop = errors.New("core: self-loops not allowed")
)

// Graph is an undirected simple graph over string node IDs.
//
// It is built once by a single goroutine via AddVertex/AddEdge and is
// read-only afterwards; there are no removal APIs. All query methods are
// safe for concurrent use once mutation has stopped.
type Graph struct {
	// adjacency[u][v] exists iff the undirected edge {u,v} was added.
	// The mirrored entry adjacency[v][u] is always present too.
	adjacency map[string]map[string]struct{}

	// vertices holds every known node, including isolated ones
	// registered via AddVertex without any incident edge.
	vertices map[string]struct{}

	edgeCount int // unordered pairs, each counted once
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
		vertices:  make(map[string]struct{}),
	}
}
