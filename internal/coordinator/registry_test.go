package coordinator

import (
	"errors"
	"testing"
	"time"

	"github.com/nishantdas/agentcoord/internal/worker"
	"github.com/nishantdas/agentcoord/pkg/models"
)

func echoTable(name string) *worker.Table {
	return worker.NewTable().Register(worker.KindGeneric, worker.Echo(name))
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("Research", []string{"web_search", "analysis"}, worker.KindResearch, echoTable("Research")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	agent, err := registry.Get("Research")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if agent.Name != "Research" {
		t.Errorf("Name = %q, want Research", agent.Name)
	}
	if agent.Status != models.AgentStatusAvailable {
		t.Errorf("Status = %q, want available", agent.Status)
	}
	if agent.TasksCompleted != 0 || agent.TotalTime != 0 {
		t.Errorf("expected zero counters, got %+v", agent)
	}
	if agent.RegisteredAt.IsZero() {
		t.Error("RegisteredAt not set")
	}
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("A", nil, worker.KindGeneric, echoTable("A")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	err := registry.Register("A", []string{"other"}, worker.KindGeneric, echoTable("A"))
	if !errors.Is(err, ErrDuplicateAgent) {
		t.Fatalf("err = %v, want ErrDuplicateAgent", err)
	}

	// Registry state unchanged: original capabilities remain.
	agent, _ := registry.Get("A")
	if len(agent.Capabilities) != 0 {
		t.Errorf("registration mutated on duplicate: %+v", agent)
	}
	if registry.Count() != 1 {
		t.Errorf("Count = %d, want 1", registry.Count())
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("ghost")
	if !errors.Is(err, ErrUnknownAgent) {
		t.Fatalf("err = %v, want ErrUnknownAgent", err)
	}
}

func TestRegistryAllRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	names := []string{"c", "a", "b"}
	for _, name := range names {
		if err := registry.Register(name, nil, worker.KindGeneric, echoTable(name)); err != nil {
			t.Fatalf("Register(%s) failed: %v", name, err)
		}
	}

	var got []string
	for agent := range registry.All() {
		got = append(got, agent.Name)
	}
	for i, name := range names {
		if got[i] != name {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestRegistryAllRestartable(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		registry.Register(name, nil, worker.KindGeneric, echoTable(name))
	}

	seq := registry.All()

	// First pass stops early; second pass must start over.
	for agent := range seq {
		if agent.Name == "a" {
			break
		}
	}
	count := 0
	for range seq {
		count++
	}
	if count != 3 {
		t.Errorf("second iteration yielded %d agents, want 3", count)
	}
}

func TestRegistryRecordDispatch(t *testing.T) {
	registry := NewRegistry()
	registry.Register("w", nil, worker.KindGeneric, echoTable("w"))

	registry.recordDispatch("w", 2*time.Second, true)
	registry.recordDispatch("w", 4*time.Second, false)

	agent, _ := registry.Get("w")
	if agent.TasksCompleted != 2 {
		t.Errorf("TasksCompleted = %d, want 2", agent.TasksCompleted)
	}
	if agent.TasksSucceeded != 1 || agent.TasksFailed != 1 {
		t.Errorf("tallies = %d/%d, want 1/1", agent.TasksSucceeded, agent.TasksFailed)
	}
	if agent.TotalTime != 6*time.Second {
		t.Errorf("TotalTime = %v, want 6s", agent.TotalTime)
	}
	if agent.AverageTime() != 3*time.Second {
		t.Errorf("AverageTime = %v, want 3s", agent.AverageTime())
	}
}
