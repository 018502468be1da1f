// Package lanmesh analyzes a static undirected network of named nodes —
// from the immutable graph core to triangle census and maximum-clique search.
//
// 🚀 What is lanmesh?
//
//	A small, focused library for one-shot structural analysis of a network
//	described as a plain edge list:
//		• Core primitives: build an undirected simple graph once, query it forever
//		• Edge-list parsing: strict "<node>-<node>" line format, fail-fast on bad records
//		• Triangle census: count or enumerate connected triples matching a predicate
//		• Maximum clique: exact branch-and-bound search with degree-ordered pruning
//
// ✨ Why choose lanmesh?
//
//   - Deterministic – sorted accessors and a fixed branching order make every
//     run reproducible for a given edge set
//   - Build-once model – no locks, no mutation after load, safe concurrent reads
//   - Pure Go core – the library packages carry no dependencies beyond stdlib
//
// Everything is organized under four subpackages:
//
//	core/      — undirected simple Graph, built once from edges, read-only after
//	edgelist/  — text edge-record parsing into a core.Graph
//	triangles/ — canonical triangle counting and enumeration
//	clique/    — exact maximum-clique search (branch-and-bound)
//
// Quick ASCII example:
//
//	    ka───ta
//	     │ ╳ │
//	    co───de
//
//	a 4-clique: every pair of the four nodes is directly connected, so the
//	maximum clique is "co,de,ka,ta".
//
// The cmd/lanmesh binary wires the pipeline end to end: parse an edge list
// from a file or stdin, then print a triangle count or the clique password.
//
//	go get github.com/katalvlaran/lanmesh
package lanmesh
