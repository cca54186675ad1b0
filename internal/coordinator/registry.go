// Package coordinator implements the multi-agent task coordinator: agent
// registration, capability matching, task decomposition, dispatch, and
// result aggregation.
package coordinator

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/nishantdas/agentcoord/internal/worker"
	"github.com/nishantdas/agentcoord/pkg/models"
)

// registration pairs an agent's model with its declared operations.
type registration struct {
	agent *models.Agent
	kind  worker.Kind
	table *worker.Table
}

// Registry manages registered agents and their declared operations.
// It provides thread-safe storage and retrieval; agents live for the
// process lifetime and are never removed.
type Registry struct {
	// byName maps agent name to its registration.
	byName map[string]*registration
	// order holds agent names in registration order.
	order []string
	// mu protects all fields, including counter updates on agents.
	mu sync.RWMutex
	// now supplies registration timestamps; overridable in tests.
	now func() time.Time
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*registration),
		now:    time.Now,
	}
}

// Register adds an agent with its capability tags, declared operation
// kind, and operation table. Returns ErrDuplicateAgent if the name is
// already registered; the registry is unchanged in that case.
func (r *Registry) Register(name string, capabilities []string, kind worker.Kind, table *worker.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAgent, name)
	}

	caps := make([]string, len(capabilities))
	copy(caps, capabilities)

	r.byName[name] = &registration{
		agent: &models.Agent{
			Name:         name,
			Capabilities: caps,
			Status:       models.AgentStatusAvailable,
			RegisteredAt: r.now(),
		},
		kind:  kind,
		table: table,
	}
	r.order = append(r.order, name)
	return nil
}

// Get returns the agent with the given name, or ErrUnknownAgent.
func (r *Registry) Get(name string) (*models.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}
	return reg.agent, nil
}

// All returns a lazy, restartable sequence of agents in registration
// order. The sequence snapshots the order at iteration start, so it is
// safe to register during iteration.
func (r *Registry) All() iter.Seq[*models.Agent] {
	return func(yield func(*models.Agent) bool) {
		for _, reg := range r.snapshot() {
			if !yield(reg.agent) {
				return
			}
		}
	}
}

// Count returns the number of registered agents.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// snapshot returns the registrations in registration order.
func (r *Registry) snapshot() []*registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]*registration, 0, len(r.order))
	for _, name := range r.order {
		regs = append(regs, r.byName[name])
	}
	return regs
}

// lookup returns the full registration for a name.
func (r *Registry) lookup(name string) (*registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byName[name]
	return reg, ok
}

// setStatus transitions an agent's availability.
func (r *Registry) setStatus(name string, status models.AgentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reg, ok := r.byName[name]; ok {
		reg.agent.Status = status
	}
}

// recordDispatch updates an agent's counters after one dispatch.
// The attempt counts toward load whether or not it succeeded.
func (r *Registry) recordDispatch(name string, elapsed time.Duration, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byName[name]
	if !ok {
		return
	}
	reg.agent.TasksCompleted++
	reg.agent.TotalTime += elapsed
	if success {
		reg.agent.TasksSucceeded++
	} else {
		reg.agent.TasksFailed++
	}
}
