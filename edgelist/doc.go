// Package edgelist parses plain-text edge records into a core.Graph.
//
// What
//
//   - Parse reads lines of the form "<node>-<node>" from an io.Reader,
//     trims surrounding whitespace, skips blank lines, and builds an
//     undirected core.Graph from the result.
//   - ParseLines does the same over an in-memory slice of lines.
//   - WithSeparator swaps the endpoint separator ("-" by default).
//
// Why
//
//	A malformed graph definition makes every downstream result
//	meaningless, so validation lives entirely at this boundary: the first
//	record that does not split into exactly two non-empty endpoints aborts
//	the whole parse with a line-numbered error. There is no partial-result
//	recovery — either the full edge list loads, or nothing does.
//
// Format
//
//	ka-ta
//	ta-de
//	de-co
//
//	Lines are whitespace-trimmed; blank lines are ignored. Endpoint order
//	within a line is irrelevant (edges are undirected), and repeated
//	records are harmless (the graph deduplicates).
//
// Complexity
//
//   - Time O(L) over total input length, plus O(1) average per edge insert.
//   - Memory O(V + E) for the resulting graph.
//
// Usage
//
//	g, err := edgelist.Parse(file)
//	if err != nil {
//	    // ErrNilReader, ErrOptionViolation, or a line-numbered
//	    // ErrMalformedEdge / core insert error
//	}
//
// Errors
//
//   - ErrNilReader        if the reader is nil.
//   - ErrMalformedEdge    if a line does not yield exactly two non-empty endpoints.
//   - ErrOptionViolation  if an invalid Option was supplied (empty separator).
//   - core.ErrSelfLoop    wrapped with the offending line number, for records
//     like "aa-aa".
package edgelist
