package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lanmesh/core"
	"github.com/katalvlaran/lanmesh/edgelist"
)

// loadGraph parses the edge list from args[0] or, with no args, stdin.
// Malformed input aborts with the parser's line-numbered error.
func loadGraph(args []string) (*core.Graph, error) {
	in := os.Stdin
	name := "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("lanmesh: %w", err)
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	start := time.Now()
	g, err := edgelist.Parse(in, edgelist.WithSeparator(flagSep))
	if err != nil {
		return nil, err
	}
	logger.Info("edge list loaded",
		zap.String("source", name),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Duration("took", time.Since(start)),
	)

	return g, nil
}
