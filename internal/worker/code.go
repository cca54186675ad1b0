package worker

import (
	"context"
	"fmt"
	"strings"
)

// CodeIssue is one finding from a static analysis pass.
type CodeIssue struct {
	// Line is the 1-based line number of the finding.
	Line int `json:"line"`
	// Message describes the finding.
	Message string `json:"message"`
}

// CodeReport is the structured result of analyzing a source snippet.
type CodeReport struct {
	// Name identifies the analyzed snippet.
	Name string `json:"name"`
	// Lines is the number of lines analyzed.
	Lines int `json:"lines"`
	// Score is a 0-100 quality score, 100 meaning no findings.
	Score int `json:"score"`
	// Issues lists the findings in line order.
	Issues []CodeIssue `json:"issues"`
}

// CodeAgent performs lightweight line-based static analysis.
type CodeAgent struct {
	// MaxLineLength is the line length above which a finding is reported.
	MaxLineLength int
}

// NewCodeAgent creates a code-analysis agent with default thresholds.
func NewCodeAgent() *CodeAgent {
	return &CodeAgent{MaxLineLength: 120}
}

// Analyze scans source text and reports long lines, leftover debug
// statements, and unresolved TODO markers. The score starts at 100 and
// loses 5 points per finding, floored at 0.
func (a *CodeAgent) Analyze(source, name string) *CodeReport {
	report := &CodeReport{Name: name, Score: 100}

	lines := strings.Split(source, "\n")
	report.Lines = len(lines)
	for i, line := range lines {
		num := i + 1
		if len(line) > a.MaxLineLength {
			report.Issues = append(report.Issues, CodeIssue{num, fmt.Sprintf("line exceeds %d characters", a.MaxLineLength)})
		}
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "TODO") || strings.Contains(trimmed, "FIXME") {
			report.Issues = append(report.Issues, CodeIssue{num, "unresolved TODO/FIXME marker"})
		}
		if strings.HasPrefix(trimmed, "print(") || strings.HasPrefix(trimmed, "fmt.Println(") {
			report.Issues = append(report.Issues, CodeIssue{num, "leftover debug print"})
		}
	}

	report.Score = 100 - 5*len(report.Issues)
	if report.Score < 0 {
		report.Score = 0
	}
	return report
}

// Table returns the agent's operation declaration. The code operation
// treats the task text itself as the source to analyze, which is how
// free-text dispatch reaches a source-oriented agent.
func (a *CodeAgent) Table(name string) *Table {
	return NewTable().
		Register(KindCode, func(_ context.Context, task string) (any, error) {
			return a.Analyze(task, "task input"), nil
		}).
		Register(KindGeneric, Echo(name))
}
