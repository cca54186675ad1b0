package worker

import (
	"context"
	"fmt"
	"sort"
)

// ChartSpec describes a chart without rendering it. Rendering is owned
// by external tooling; the coordinator only passes the spec through.
type ChartSpec struct {
	// Title is the chart heading.
	Title string `json:"title"`
	// Kind is the chart type, currently always "bar".
	Kind string `json:"kind"`
	// Categories lists the category labels in display order.
	Categories []string `json:"categories"`
	// Values lists the numeric value per category, same order.
	Values []float64 `json:"values"`
}

// VisualAgent builds chart specifications from category/value data.
type VisualAgent struct{}

// NewVisualAgent creates a visualization agent.
func NewVisualAgent() *VisualAgent {
	return &VisualAgent{}
}

// Chart builds a bar-chart spec with categories in sorted order so the
// output is deterministic regardless of map iteration.
func (a *VisualAgent) Chart(data map[string]float64, title string) *ChartSpec {
	spec := &ChartSpec{Title: title, Kind: "bar"}
	for category := range data {
		spec.Categories = append(spec.Categories, category)
	}
	sort.Strings(spec.Categories)
	for _, category := range spec.Categories {
		spec.Values = append(spec.Values, data[category])
	}
	return spec
}

// Table returns the agent's operation declaration. The visual operation
// charts the word-length distribution of the task text, a stand-in for
// real input data reaching the agent out of band.
func (a *VisualAgent) Table(name string) *Table {
	return NewTable().
		Register(KindVisual, func(_ context.Context, task string) (any, error) {
			data := make(map[string]float64)
			for _, w := range Tokenize(task) {
				data[fmt.Sprintf("len_%d", len(w))]++
			}
			return a.Chart(data, task), nil
		}).
		Register(KindGeneric, Echo(name))
}
