package main

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/nishantdas/agentcoord/internal/config"
	"github.com/nishantdas/agentcoord/internal/coordinator"
	"github.com/nishantdas/agentcoord/internal/worker"
)

// rosterEntry describes one built-in agent for listing purposes.
type rosterEntry struct {
	Name         string
	Kind         worker.Kind
	Capabilities []string
}

// builtinRoster is the standard agent lineup registered by the CLI.
var builtinRoster = []rosterEntry{
	{"Research", worker.KindResearch, []string{"web_search", "analysis", "reporting"}},
	{"CodeAnalyzer", worker.KindCode, []string{"code_review", "security", "performance"}},
	{"Visualizer", worker.KindVisual, []string{"charts", "visualization", "data_display"}},
	{"FinanceTracker", worker.KindFinance, []string{"stocks", "market_data", "trends"}},
	{"AudioProcessor", worker.KindAudio, []string{"waveform", "audio_analysis", "signal"}},
	{"ContentWriter", worker.KindContent, []string{"writing", "articles", "content_creation"}},
}

// loadConfig loads the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}

// buildCoordinator creates a coordinator with the built-in roster
// registered. Content tasks go through the Anthropic API when enabled
// and an API key is configured; otherwise the template agent serves
// them.
func buildCoordinator(cfg *config.Config) (*coordinator.Coordinator, error) {
	logger, err := coordinator.NewDebugLogger(cfg.Logging.DebugLogPath)
	if err != nil {
		return nil, fmt.Errorf("create debug logger: %w", err)
	}

	c := coordinator.New(coordinator.WithLogger(logger))

	finance := worker.NewFinanceAgent()
	if cfg.Agents.FinanceDays > 0 {
		finance.Days = cfg.Agents.FinanceDays
	}

	tables := map[string]*worker.Table{
		"Research":       worker.NewResearchAgent(cfg.Agents.SearchLimit).Table("Research"),
		"CodeAnalyzer":   worker.NewCodeAgent().Table("CodeAnalyzer"),
		"Visualizer":     worker.NewVisualAgent().Table("Visualizer"),
		"FinanceTracker": finance.Table("FinanceTracker"),
		"AudioProcessor": worker.NewAudioAgent().Table("AudioProcessor"),
		"ContentWriter":  worker.NewContentAgent().Table("ContentWriter"),
	}

	if cfg.Agents.UseClaude && cfg.Anthropic.APIKey != "" {
		claude, err := worker.NewClaudeContentAgent(cfg.Anthropic.APIKey, anthropic.Model(cfg.Anthropic.Model))
		if err != nil {
			return nil, fmt.Errorf("create claude content agent: %w", err)
		}
		tables["ContentWriter"] = claude.Table("ContentWriter")
	}

	for _, entry := range builtinRoster {
		if err := c.Register(entry.Name, entry.Capabilities, entry.Kind, tables[entry.Name]); err != nil {
			return nil, fmt.Errorf("register %s: %w", entry.Name, err)
		}
	}
	return c, nil
}
