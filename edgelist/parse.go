// Package edgelist parses "<node>-<node>" text records into a core.Graph,
// failing fast on the first malformed record.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lanmesh/core"
)

// Parse reads edge records from r, one per line, and builds an undirected
// core.Graph. Lines are whitespace-trimmed and blank lines skipped; the
// first bad record aborts the parse with a line-numbered error.
//
// Returns ErrNilReader, ErrOptionViolation, a wrapped ErrMalformedEdge,
// or a wrapped core insert error (e.g. core.ErrSelfLoop).
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := core.NewGraph()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := addRecord(g, scanner.Text(), lineNo, o.Separator); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read failed at line %d: %w", lineNo+1, err)
	}

	return g, nil
}

// ParseLines builds a graph from an in-memory slice of edge records,
// under the same validation rules as Parse.
func ParseLines(lines []string, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := core.NewGraph()
	for i, line := range lines {
		if err := addRecord(g, line, i+1, o.Separator); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// addRecord validates one raw line and inserts its edge into g.
// Blank lines (after trimming) are skipped.
func addRecord(g *core.Graph, raw string, lineNo int, sep string) error {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}
	u, v, ok := strings.Cut(line, sep)
	if !ok || u == "" || v == "" || strings.Contains(v, sep) {
		return fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
	}
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("edgelist: line %d: %q: %w", lineNo, line, err)
	}

	return nil
}
