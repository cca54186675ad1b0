package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nishantdas/agentcoord/internal/state"
	"github.com/nishantdas/agentcoord/pkg/models"
)

var (
	runHint      string
	runComposite bool
)

var runCmd = &cobra.Command{
	Use:   "run <task description>",
	Short: "Dispatch a task to the best-suited agent",
	Long: `Dispatch a free-text task description.

With --composite, composite descriptions (e.g. "research X and analyze
the findings") are split into ordered sub-tasks routed to different
agents, and the outcomes are aggregated into one result. Otherwise the
task goes to the single best-ranked agent.

An optional --hint narrows matching to agents whose name contains the
hint (research, code, visual, finance, audio, content).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runHint, "hint", "", "Agent category hint (name substring)")
	runCmd.Flags().BoolVar(&runComposite, "composite", false, "Decompose composite tasks into sub-tasks")
}

func runRun(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var outcomes []*models.DispatchOutcome

	if runComposite {
		result := c.DispatchComposite(ctx, description, runHint)
		outcomes = result.Outcomes
		printComposite(result)
	} else {
		outcome := c.Dispatch(ctx, description, runHint)
		outcomes = []*models.DispatchOutcome{outcome}
		printOutcome(outcome)
	}

	if cfg.History.Persist {
		if err := persistOutcomes(cfg.History.Path, outcomes); err != nil {
			return fmt.Errorf("persist history: %w", err)
		}
	}
	return nil
}

func persistOutcomes(dbPath string, outcomes []*models.DispatchOutcome) error {
	db, err := state.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if outcome.Record == nil {
			continue
		}
		if err := db.AppendRecord(outcome.Record); err != nil {
			return err
		}
	}
	return nil
}

func printOutcome(outcome *models.DispatchOutcome) {
	if outcome.Success {
		color.Green("✓ %s (%s)", outcome.AgentName, outcome.Elapsed.Round(1e6))
		if outcome.Record != nil {
			fmt.Println(outcome.Record.Summary)
		}
		return
	}
	if outcome.AgentName == "" {
		color.Red("✗ no suitable agent: %s", outcome.Error)
		return
	}
	color.Red("✗ %s failed: %s", outcome.AgentName, outcome.Error)
}

func printComposite(result *models.CompositeResult) {
	for i, outcome := range result.Outcomes {
		fmt.Printf("[%d/%d] ", i+1, result.TotalSubTasks)
		printOutcome(outcome)
	}
	fmt.Println()
	if result.Success {
		color.Green(result.Summary)
	} else {
		color.Yellow(result.Summary)
	}
}
