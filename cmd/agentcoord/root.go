package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "agentcoord",
	Short: "Multi-agent task coordinator",
	Long: `agentcoord routes free-text tasks to the best-suited agent out of a
roster of specialized agents (research, code analysis, visualization,
market data, audio, content), decomposes composite tasks into ordered
sub-tasks, and tracks per-agent performance metrics.

Core capabilities:
- Matches task descriptions to agent capabilities with load balancing
- Splits composite tasks into research/analysis/report pipelines
- Aggregates sub-task outcomes into one result
- Reports per-agent efficiency and system-wide statistics`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (overrides discovery)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
