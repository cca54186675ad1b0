package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nishantdas/agentcoord/internal/export"
	"github.com/nishantdas/agentcoord/internal/state"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task history and per-agent summaries",
	Long: `Serialize the persisted task history and per-agent summaries to a
structured document. Field names are stable; downstream tooling parses
these files.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json or yaml (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := export.Format(exportFormat)
	if format == "" {
		format = export.Format(cfg.Export.Format)
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
	doc := export.Build(records)

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return export.Write(out, doc, format)
}
