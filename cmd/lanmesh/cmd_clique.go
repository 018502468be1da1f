package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lanmesh/clique"
)

var cliqueCmd = &cobra.Command{
	Use:   "clique [file]",
	Short: "Print the maximum clique as a sorted comma-joined list",
	Long: `Finds the largest group of nodes in which every pair is directly
connected and prints it as a comma-joined, alphabetically sorted list
(the "LAN party password" form), e.g. co,de,ka,ta.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClique,
}

func runClique(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := clique.Max(g, clique.WithOnImprove(func(members []string) {
		logger.Debug("incumbent improved", zap.Int("size", len(members)))
	}))
	if err != nil {
		return err
	}
	logger.Info("clique search done",
		zap.Int("size", res.Size()),
		zap.Duration("took", time.Since(start)),
	)

	fmt.Fprintln(cmd.OutOrStdout(), res.String())

	return nil
}
