package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishantdas/agentcoord/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("user config:   %s\n", config.GetUserConfigPath())
		fmt.Printf("history path:  %s (persist=%v)\n", cfg.History.Path, cfg.History.Persist)
		fmt.Printf("debug log:     %s\n", orUnset(cfg.Logging.DebugLogPath))
		fmt.Printf("search limit:  %d\n", cfg.Agents.SearchLimit)
		fmt.Printf("finance days:  %d\n", cfg.Agents.FinanceDays)
		fmt.Printf("export format: %s\n", cfg.Export.Format)
		fmt.Printf("claude agent:  %v (api key set: %v)\n", cfg.Agents.UseClaude, cfg.Anthropic.APIKey != "")
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(disabled)"
	}
	return s
}
