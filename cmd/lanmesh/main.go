// Command lanmesh analyzes a static network described as a plain edge
// list: it counts triangles matching a name rule and finds the maximum
// clique "password".
//
// Usage:
//
//	lanmesh triangles netmap.txt --prefix t
//	cat netmap.txt | lanmesh clique
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Shared flags.
	flagSep     string
	flagVerbose bool

	// logger is a nop unless --verbose is set.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "lanmesh",
	Short: "Triangle census and maximum-clique search over an edge-list network",
	Long: `lanmesh reads an undirected network as "<node>-<node>" lines from a
file or stdin, and reports either the triangle census or the maximum
clique (the largest fully meshed node group).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flagVerbose {
			return nil
		}
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("lanmesh: logger setup failed: %w", err)
		}
		logger = l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSep, "sep", "-", "edge record endpoint separator")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.AddCommand(trianglesCmd)
	rootCmd.AddCommand(cliqueCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
