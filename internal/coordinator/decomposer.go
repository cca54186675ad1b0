package coordinator

import (
	"fmt"
	"strings"
)

// Category hints emitted by the decomposer. They are matched against
// agent names as case-insensitive substrings.
const (
	HintResearch = "research"
	HintCode     = "code"
	HintVisual   = "visual"
	HintContent  = "content"
)

// SubTask is one step of a decomposed composite task.
type SubTask struct {
	// Description is the sub-task text to dispatch.
	Description string `json:"description"`
	// Hint is the target agent category for this step.
	Hint string `json:"hint"`
}

// Decomposer recognizes composite task descriptions and splits them into
// ordered sub-tasks. It is a small fixed rule set, not a planner; the
// literal keyword triggers are part of the observable contract.
type Decomposer struct{}

// NewDecomposer creates a Decomposer.
func NewDecomposer() *Decomposer {
	return &Decomposer{}
}

// Decompose returns the ordered sub-tasks for a composite description,
// or nil when the description should be dispatched as a single task.
//
// The research pattern (research+analyze, or analyze+report) yields
// three steps: research, analysis, report. Otherwise the visualization
// pattern (data+visual, or analyze+chart) yields two steps: analysis,
// visualization. The research pattern wins when both match.
func (d *Decomposer) Decompose(description string) []SubTask {
	text := strings.ToLower(description)
	has := func(word string) bool { return strings.Contains(text, word) }

	switch {
	case has("research") && has("analyze"), has("analyze") && has("report"):
		return []SubTask{
			{Description: fmt.Sprintf("Research information about: %s", description), Hint: HintResearch},
			{Description: "Analyze the research findings", Hint: HintCode},
			{Description: "Create a report based on the analysis", Hint: HintContent},
		}
	case has("data") && has("visual"), has("analyze") && has("chart"):
		return []SubTask{
			{Description: fmt.Sprintf("Analyze the data in: %s", description), Hint: HintCode},
			{Description: "Create a visualization of the analysis", Hint: HintVisual},
		}
	default:
		return nil
	}
}
