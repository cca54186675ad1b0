package coordinator

import (
	"strings"
	"testing"
)

func TestDecomposeResearchPattern(t *testing.T) {
	d := NewDecomposer()

	for _, description := range []string{
		"Research AI and analyze the results",
		"analyze the findings and write a report",
		"RESEARCH then ANALYZE everything",
	} {
		subs := d.Decompose(description)
		if len(subs) != 3 {
			t.Fatalf("Decompose(%q) returned %d sub-tasks, want 3", description, len(subs))
		}
		wantHints := []string{HintResearch, HintCode, HintContent}
		for i, hint := range wantHints {
			if subs[i].Hint != hint {
				t.Errorf("Decompose(%q)[%d].Hint = %q, want %q", description, i, subs[i].Hint, hint)
			}
		}
		if !strings.Contains(subs[0].Description, description) {
			t.Errorf("research step %q should carry the original description", subs[0].Description)
		}
	}
}

func TestDecomposeVisualizationPattern(t *testing.T) {
	d := NewDecomposer()

	for _, description := range []string{
		"Analyze data and create visualization",
		"turn this data into a visual summary",
		"analyze the sales and plot a chart",
	} {
		subs := d.Decompose(description)
		if len(subs) != 2 {
			t.Fatalf("Decompose(%q) returned %d sub-tasks, want 2", description, len(subs))
		}
		if subs[0].Hint != HintCode || subs[1].Hint != HintVisual {
			t.Errorf("Decompose(%q) hints = %q/%q, want code/visual", description, subs[0].Hint, subs[1].Hint)
		}
	}
}

func TestDecomposeResearchPatternTakesPrecedence(t *testing.T) {
	d := NewDecomposer()

	// Matches both patterns; the research pattern must win.
	subs := d.Decompose("research the data, analyze it, and report with a chart")
	if len(subs) != 3 {
		t.Fatalf("got %d sub-tasks, want 3 from the research pattern", len(subs))
	}
	if subs[0].Hint != HintResearch {
		t.Errorf("first hint = %q, want research", subs[0].Hint)
	}
}

func TestDecomposeAtomicTask(t *testing.T) {
	d := NewDecomposer()

	for _, description := range []string{
		"write an article about birds",
		"research AI trends", // research without analyze is atomic
		"",
	} {
		if subs := d.Decompose(description); len(subs) != 0 {
			t.Errorf("Decompose(%q) = %v, want no sub-tasks", description, subs)
		}
	}
}
