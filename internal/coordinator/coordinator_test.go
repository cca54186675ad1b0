package coordinator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nishantdas/agentcoord/internal/worker"
	"github.com/nishantdas/agentcoord/pkg/models"
)

// fakeClock returns scripted times: each call to Now returns the current
// instant, then advances by the next step in the queue.
type fakeClock struct {
	t     time.Time
	steps []time.Duration
}

func newFakeClock(steps ...time.Duration) *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), steps: steps}
}

func (c *fakeClock) Now() time.Time {
	now := c.t
	if len(c.steps) > 0 {
		c.t = c.t.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return now
}

func failingTable(msg string) *worker.Table {
	return worker.NewTable().Register(worker.KindGeneric, func(_ context.Context, _ string) (any, error) {
		return nil, errors.New(msg)
	})
}

func TestDispatchRoutesToHintedAgent(t *testing.T) {
	c := New()
	research := worker.NewResearchAgent(5)
	if err := c.Register("Research", []string{"web_search", "analysis", "reporting"}, worker.KindResearch, research.Table("Research")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	code := worker.NewCodeAgent()
	if err := c.Register("CodeAnalyzer", []string{"code_review", "security", "performance"}, worker.KindCode, code.Table("CodeAnalyzer")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	outcome := c.Dispatch(context.Background(), "Research AI trends", "research")

	if !outcome.Success {
		t.Fatalf("dispatch failed: %s", outcome.Error)
	}
	if outcome.AgentName != "Research" {
		t.Errorf("AgentName = %q, want Research", outcome.AgentName)
	}
	if outcome.Record == nil || !outcome.Record.Success {
		t.Error("expected a successful task record")
	}

	agent, err := c.Registry().Get("Research")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if agent.TasksCompleted != 1 {
		t.Errorf("TasksCompleted = %d, want 1", agent.TasksCompleted)
	}
	if agent.Status != models.AgentStatusAvailable {
		t.Errorf("Status = %q, want available after dispatch", agent.Status)
	}
}

func TestDispatchNoSuitableAgent(t *testing.T) {
	c := New()
	c.Register("Research", []string{"web_search"}, worker.KindResearch, echoTable("Research"))

	outcome := c.Dispatch(context.Background(), "anything", "nonexistent_category")

	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.AgentName != "" {
		t.Errorf("AgentName = %q, want empty", outcome.AgentName)
	}
	if !strings.Contains(outcome.Error, "no suitable agent") {
		t.Errorf("Error = %q", outcome.Error)
	}
	if outcome.Record != nil {
		t.Error("unmatched dispatch must not create a task record")
	}
	if len(c.History()) != 0 {
		t.Error("unmatched dispatch must not append to history")
	}

	// No statistics mutated.
	agent, _ := c.Registry().Get("Research")
	if agent.TasksCompleted != 0 || agent.TotalTime != 0 {
		t.Errorf("stats mutated: %+v", agent)
	}
}

func TestDispatchConvertsAgentError(t *testing.T) {
	c := New()
	c.Register("Flaky", nil, worker.KindGeneric, failingTable("backend unavailable"))

	outcome := c.Dispatch(context.Background(), "do the thing", "")

	if outcome.Success {
		t.Fatal("expected failed outcome")
	}
	if !strings.Contains(outcome.Error, "backend unavailable") {
		t.Errorf("Error = %q, want agent error text", outcome.Error)
	}

	// The attempt still counts toward load.
	agent, _ := c.Registry().Get("Flaky")
	if agent.TasksCompleted != 1 || agent.TasksFailed != 1 {
		t.Errorf("stats = %d completed / %d failed, want 1/1", agent.TasksCompleted, agent.TasksFailed)
	}
	history := c.History()
	if len(history) != 1 || history[0].Success {
		t.Errorf("expected one failed history record, got %v", history)
	}
}

func TestDispatchConvertsPanic(t *testing.T) {
	c := New()
	table := worker.NewTable().Register(worker.KindGeneric, func(_ context.Context, _ string) (any, error) {
		panic("boom")
	})
	c.Register("Wild", nil, worker.KindGeneric, table)

	outcome := c.Dispatch(context.Background(), "task", "")
	if outcome.Success {
		t.Fatal("expected failure from panicking agent")
	}
	if !strings.Contains(outcome.Error, "panicked") {
		t.Errorf("Error = %q", outcome.Error)
	}
}

func TestDispatchTruncatesSummary(t *testing.T) {
	c := New()
	long := strings.Repeat("x", 500)
	table := worker.NewTable().Register(worker.KindGeneric, func(_ context.Context, _ string) (any, error) {
		return long, nil
	})
	c.Register("Chatty", nil, worker.KindGeneric, table)

	outcome := c.Dispatch(context.Background(), "talk", "")
	if got := len(outcome.Record.Summary); got > summaryLimit {
		t.Errorf("summary length = %d, want <= %d", got, summaryLimit)
	}
	if !strings.HasSuffix(outcome.Record.Summary, "...") {
		t.Errorf("summary %q should mark truncation", outcome.Record.Summary)
	}
}

func TestDispatchCompositeVisualization(t *testing.T) {
	c := New()
	code := worker.NewCodeAgent()
	c.Register("CodeAnalyzer", []string{"code_review", "analysis"}, worker.KindCode, code.Table("CodeAnalyzer"))
	visual := worker.NewVisualAgent()
	c.Register("Visualizer", []string{"charts", "visualization"}, worker.KindVisual, visual.Table("Visualizer"))

	result := c.DispatchComposite(context.Background(), "Analyze data and create visualization", "")

	if result.TotalSubTasks != 2 {
		t.Fatalf("TotalSubTasks = %d, want 2", result.TotalSubTasks)
	}
	if !result.Success {
		t.Fatalf("composite failed: %s", result.Summary)
	}
	if len(result.AgentsInvolved) != 2 {
		t.Errorf("AgentsInvolved = %v, want 2 distinct agents", result.AgentsInvolved)
	}
}

func TestDispatchCompositeResearchOrder(t *testing.T) {
	c := New()
	c.Register("Research", []string{"web_search"}, worker.KindResearch, echoTable("Research"))
	c.Register("CodeAnalyzer", []string{"code_review"}, worker.KindCode, echoTable("CodeAnalyzer"))
	c.Register("ContentWriter", []string{"writing"}, worker.KindContent, echoTable("ContentWriter"))

	result := c.DispatchComposite(context.Background(), "Research the market and analyze findings", "")

	if result.TotalSubTasks != 3 {
		t.Fatalf("TotalSubTasks = %d, want 3", result.TotalSubTasks)
	}
	want := []string{"Research", "CodeAnalyzer", "ContentWriter"}
	for i, outcome := range result.Outcomes {
		if outcome.AgentName != want[i] {
			t.Errorf("step %d routed to %q, want %q", i, outcome.AgentName, want[i])
		}
	}
}

func TestDispatchCompositeContinuesAfterFailure(t *testing.T) {
	c := New()
	c.Register("Research", nil, worker.KindGeneric, failingTable("search down"))
	c.Register("CodeAnalyzer", nil, worker.KindGeneric, echoTable("CodeAnalyzer"))
	c.Register("ContentWriter", nil, worker.KindGeneric, echoTable("ContentWriter"))

	result := c.DispatchComposite(context.Background(), "research and analyze the topic", "")

	if result.Success {
		t.Error("composite should report failure")
	}
	if result.TotalSubTasks != 3 {
		t.Fatalf("TotalSubTasks = %d, want 3: later steps must still run", result.TotalSubTasks)
	}
	if result.Succeeded != 2 || result.Failed != 1 {
		t.Errorf("counts = %d/%d, want 2 succeeded, 1 failed", result.Succeeded, result.Failed)
	}
}

func TestDispatchCompositeFallsBackToAtomic(t *testing.T) {
	c := New()
	c.Register("Solo", nil, worker.KindGeneric, echoTable("Solo"))

	result := c.DispatchComposite(context.Background(), "write a haiku", "")

	if result.TotalSubTasks != 1 {
		t.Fatalf("TotalSubTasks = %d, want 1 atomic dispatch", result.TotalSubTasks)
	}
	if !result.Success {
		t.Errorf("atomic fallback failed: %s", result.Summary)
	}
}

func TestDispatchCompositeAtomicFallbackHonorsHint(t *testing.T) {
	c := New()
	c.Register("Writer", nil, worker.KindGeneric, echoTable("Writer"))
	c.Register("Painter", nil, worker.KindGeneric, echoTable("Painter"))

	result := c.DispatchComposite(context.Background(), "write a haiku", "paint")

	if result.TotalSubTasks != 1 {
		t.Fatalf("TotalSubTasks = %d, want 1 atomic dispatch", result.TotalSubTasks)
	}
	if got := result.Outcomes[0].AgentName; got != "Painter" {
		t.Errorf("atomic fallback routed to %q, want the hinted agent Painter", got)
	}
}

func TestAverageTimeIsExact(t *testing.T) {
	t1 := 120 * time.Millisecond
	t2 := 80 * time.Millisecond
	t3 := 250 * time.Millisecond
	clock := newFakeClock(t1, 0, t2, 0, t3)

	c := New(WithClock(clock.Now))
	c.Register("Timed", nil, worker.KindGeneric, echoTable("Timed"))

	for i := 0; i < 3; i++ {
		outcome := c.Dispatch(context.Background(), fmt.Sprintf("task %d", i), "")
		if !outcome.Success {
			t.Fatalf("dispatch %d failed: %s", i, outcome.Error)
		}
	}

	agent, _ := c.Registry().Get("Timed")
	want := (t1 + t2 + t3) / 3
	if agent.AverageTime() != want {
		t.Errorf("AverageTime = %v, want exactly %v", agent.AverageTime(), want)
	}
}

func TestReportIdempotent(t *testing.T) {
	c := New()
	c.Register("A", nil, worker.KindGeneric, echoTable("A"))
	c.Register("B", nil, worker.KindGeneric, echoTable("B"))
	c.Dispatch(context.Background(), "warm up", "")

	first := c.Report()
	second := c.Report()
	if !reflect.DeepEqual(first, second) {
		t.Error("two reports with no intervening dispatch differ")
	}
}

func TestReportContents(t *testing.T) {
	c := New()
	c.Register("A", nil, worker.KindGeneric, echoTable("A"))
	c.Register("B", nil, worker.KindGeneric, failingTable("nope"))

	c.Dispatch(context.Background(), "one", "a")
	c.Dispatch(context.Background(), "two", "a")
	c.Dispatch(context.Background(), "three", "b")

	report := c.Report()
	if report.TotalAgents != 2 || report.TotalTasks != 3 {
		t.Errorf("totals = %d/%d, want 2/3", report.TotalAgents, report.TotalTasks)
	}
	if report.Agents["A"].TasksCompleted != 2 {
		t.Errorf("A completed = %d, want 2", report.Agents["A"].TasksCompleted)
	}
	if got, want := report.Summary.SuccessRate, 2.0/3.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("SuccessRate = %v, want %v", got, want)
	}
	if report.Summary.MostActiveAgent != "A" {
		t.Errorf("MostActiveAgent = %q, want A", report.Summary.MostActiveAgent)
	}
}
