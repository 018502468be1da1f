package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lanmesh/triangles"
)

var flagPrefix string

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Count triangles whose members match the --prefix rule",
	Long: `Counts connected triples (triangles) in the network. With --prefix P,
only triangles in which at least one node name starts with P are
counted; an empty prefix counts every triangle.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTriangles,
}

func init() {
	trianglesCmd.Flags().StringVar(&flagPrefix, "prefix", "t", "count triangles with at least one member starting with this prefix (empty = all)")
}

func runTriangles(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args)
	if err != nil {
		return err
	}

	start := time.Now()
	n, err := triangles.Count(g, triangles.WithAnyPrefix(flagPrefix))
	if err != nil {
		return err
	}
	logger.Info("triangle census done",
		zap.String("prefix", flagPrefix),
		zap.Int("count", n),
		zap.Duration("took", time.Since(start)),
	)

	fmt.Fprintln(cmd.OutOrStdout(), n)

	return nil
}
