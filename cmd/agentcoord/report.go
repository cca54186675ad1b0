package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nishantdas/agentcoord/internal/metrics"
	"github.com/nishantdas/agentcoord/internal/state"
	"github.com/nishantdas/agentcoord/pkg/models"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the performance report from persisted history",
	RunE:  runReport,
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.History.Path); os.IsNotExist(err) {
		fmt.Println("No task history yet. Run 'agentcoord run <task>' first.")
		return nil
	}

	db, err := state.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}

	records, err := db.Records()
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	summaries, err := db.AgentSummaries()
	if err != nil {
		return fmt.Errorf("read agent summaries: %w", err)
	}

	// Rebuild agent stats from persisted history. Success tallies come
	// from the records; registration order is unknown here, so names
	// are ordered alphabetically.
	agents := make([]*models.Agent, 0, len(summaries))
	for _, s := range summaries {
		agents = append(agents, &models.Agent{
			Name:           s.Name,
			Status:         models.AgentStatusAvailable,
			TasksCompleted: s.TaskCount,
			TotalTime:      s.TotalTime,
		})
	}
	report := metrics.BuildReport(agents, records)
	printReport(report)
	return nil
}

func printReport(report *models.PerformanceReport) {
	fmt.Println(headerStyle.Render("Performance Report"))
	fmt.Printf("%s %s   %s %s\n",
		labelStyle.Render("agents:"), valueStyle.Render(fmt.Sprintf("%d", report.TotalAgents)),
		labelStyle.Render("tasks:"), valueStyle.Render(fmt.Sprintf("%d", report.TotalTasks)))

	names := make([]string, 0, len(report.Agents))
	for name := range report.Agents {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Printf("%-16s %8s %10s %12s\n", "AGENT", "TASKS", "AVG TIME", "EFFICIENCY")
	fmt.Println(strings.Repeat("-", 50))
	for _, name := range names {
		stats := report.Agents[name]
		fmt.Printf("%-16s %8d %9.2fs %12.1f\n",
			name, stats.TasksCompleted, stats.AverageTimeSeconds, stats.EfficiencyScore)
	}

	fmt.Println()
	fmt.Printf("%s %.1f%%   %s %.2fs   %s %s\n",
		labelStyle.Render("success rate:"), report.Summary.SuccessRate*100,
		labelStyle.Render("avg task time:"), report.Summary.AverageTaskTimeSeconds,
		labelStyle.Render("most active:"), valueStyle.Render(orNone(report.Summary.MostActiveAgent)))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
