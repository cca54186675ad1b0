// Package export serializes the coordinator's task history and per-agent
// summaries to structured documents. Field names and nesting are an
// external contract; other tooling parses these files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nishantdas/agentcoord/pkg/models"
)

// Format selects the serialization format of a document.
type Format string

const (
	// FormatJSON serializes with encoding/json, indented.
	FormatJSON Format = "json"
	// FormatYAML serializes with yaml.v3.
	FormatYAML Format = "yaml"
)

// AgentSummary is the per-agent section of an export document.
type AgentSummary struct {
	// TaskCount is the number of history entries for the agent.
	TaskCount int `json:"taskCount" yaml:"taskCount"`
	// TotalTimeSeconds is the summed elapsed time, in seconds.
	TotalTimeSeconds float64 `json:"totalTimeSeconds" yaml:"totalTimeSeconds"`
}

// TaskEntry is one history entry in an export document.
type TaskEntry struct {
	ID          string    `json:"id" yaml:"id"`
	Description string    `json:"description" yaml:"description"`
	Agent       string    `json:"agent" yaml:"agent"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	ElapsedSecs float64   `json:"elapsedSeconds" yaml:"elapsedSeconds"`
	Success     bool      `json:"success" yaml:"success"`
	Summary     string    `json:"summary" yaml:"summary"`
}

// Document is the full export payload.
type Document struct {
	// GeneratedAt is when the document was built.
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	// TotalTasks is the number of history entries.
	TotalTasks int `json:"totalTasks" yaml:"totalTasks"`
	// History lists the task records, oldest first.
	History []TaskEntry `json:"history" yaml:"history"`
	// Agents maps agent name to its summary.
	Agents map[string]AgentSummary `json:"agents" yaml:"agents"`
}

// Build creates a document from a task history snapshot, deriving the
// per-agent summaries from the records themselves.
func Build(history []*models.TaskRecord) *Document {
	doc := &Document{
		GeneratedAt: time.Now().UTC(),
		TotalTasks:  len(history),
		Agents:      make(map[string]AgentSummary),
	}

	for _, record := range history {
		doc.History = append(doc.History, TaskEntry{
			ID:          record.ID,
			Description: record.Description,
			Agent:       record.AgentName,
			Timestamp:   record.Timestamp,
			ElapsedSecs: record.Elapsed.Seconds(),
			Success:     record.Success,
			Summary:     record.Summary,
		})
		summary := doc.Agents[record.AgentName]
		summary.TaskCount++
		summary.TotalTimeSeconds += record.Elapsed.Seconds()
		doc.Agents[record.AgentName] = summary
	}
	return doc
}

// Write serializes the document to w in the given format.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// AgentNames returns the agent names present in the document, sorted.
func (d *Document) AgentNames() []string {
	names := make([]string, 0, len(d.Agents))
	for name := range d.Agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
