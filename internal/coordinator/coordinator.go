package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nishantdas/agentcoord/internal/metrics"
	"github.com/nishantdas/agentcoord/internal/worker"
	"github.com/nishantdas/agentcoord/pkg/models"
)

// summaryLimit is the maximum length of a task record's result summary.
const summaryLimit = 100

// Coordinator owns the agent registry, the task history log, and the
// components that route tasks to agents. Construct one per process with
// New; there is no package-level singleton.
type Coordinator struct {
	registry   *Registry
	matcher    *Matcher
	decomposer *Decomposer
	logger     *DebugLogger

	// now supplies timestamps; overridable for deterministic tests.
	now func() time.Time

	// histMu guards appends to and reads of the history log.
	histMu  sync.Mutex
	history []*models.TaskRecord
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the debug logger used by the coordinator.
func WithLogger(logger *DebugLogger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithClock overrides the coordinator's time source.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// New creates a Coordinator with an empty registry.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		registry:   NewRegistry(),
		decomposer: NewDecomposer(),
		logger:     NopLogger(),
		now:        time.Now,
	}
	c.matcher = NewMatcher(c.registry)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds an agent with its capability tags, declared operation
// kind, and operation table.
func (c *Coordinator) Register(name string, capabilities []string, kind worker.Kind, table *worker.Table) error {
	if err := c.registry.Register(name, capabilities, kind, table); err != nil {
		return err
	}
	c.logger.Log("registered agent %q kind=%s capabilities=%v", name, kind, capabilities)
	metrics.RegisteredAgents.Set(float64(c.registry.Count()))
	return nil
}

// Registry returns the coordinator's agent registry.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Decomposer returns the coordinator's task decomposer.
func (c *Coordinator) Decomposer() *Decomposer {
	return c.decomposer
}

// Matcher returns the coordinator's capability matcher.
func (c *Coordinator) Matcher() *Matcher {
	return c.matcher
}

// Dispatch resolves the task to a single agent, invokes it, and records
// the outcome. A matching failure or agent error is returned as a failed
// outcome, never as a Go error: the coordinator converts, it does not
// propagate.
func (c *Coordinator) Dispatch(ctx context.Context, description, hint string) *models.DispatchOutcome {
	candidates := c.matcher.Match(description, hint)
	if len(candidates) == 0 {
		c.logger.Log("dispatch: %v (hint=%q): %q", ErrNoSuitableAgent, hint, description)
		metrics.DispatchesTotal.WithLabelValues("none", "unmatched").Inc()
		return &models.DispatchOutcome{Error: ErrNoSuitableAgent.Error()}
	}

	agent := candidates[0]
	reg, ok := c.registry.lookup(agent.Name)
	if !ok {
		// Unreachable while agents are never removed.
		return &models.DispatchOutcome{Error: fmt.Sprintf("%v: %s", ErrUnknownAgent, agent.Name)}
	}

	c.registry.setStatus(agent.Name, models.AgentStatusBusy)
	metrics.BusyAgents.Inc()
	started := c.now()
	payload, err := c.invoke(ctx, reg, description)
	elapsed := c.now().Sub(started)
	c.registry.setStatus(agent.Name, models.AgentStatusAvailable)
	metrics.BusyAgents.Dec()

	// The attempt counts toward the agent's load either way.
	c.registry.recordDispatch(agent.Name, elapsed, err == nil)

	outcome := &models.DispatchOutcome{
		Success:   err == nil,
		AgentName: agent.Name,
		Elapsed:   elapsed,
		Payload:   payload,
	}
	summary := truncateSummary(fmt.Sprintf("%v", payload))
	status := "success"
	if err != nil {
		outcome.Error = err.Error()
		summary = truncateSummary("error: " + err.Error())
		status = "failure"
		c.logger.Log("dispatch: agent %q failed in %s: %v", agent.Name, elapsed, err)
	} else {
		c.logger.Log("dispatch: agent %q finished in %s", agent.Name, elapsed)
	}

	record := &models.TaskRecord{
		ID:          uuid.NewString(),
		Description: description,
		AgentName:   agent.Name,
		Timestamp:   started,
		Elapsed:     elapsed,
		Success:     outcome.Success,
		Summary:     summary,
	}
	outcome.Record = record

	c.histMu.Lock()
	c.history = append(c.history, record)
	c.histMu.Unlock()

	metrics.DispatchesTotal.WithLabelValues(agent.Name, status).Inc()
	metrics.DispatchSeconds.WithLabelValues(agent.Name).Observe(elapsed.Seconds())
	return outcome
}

// DispatchComposite decomposes the description into sub-tasks, dispatches
// them in order, and aggregates the outcomes. Sub-tasks run sequentially
// and a failure does not short-circuit later steps, so a multi-step task
// reports partial success rather than aborting. Falls back to a single
// atomic dispatch when the description is not composite; the caller's
// hint applies to that fallback, while decomposed sub-tasks carry their
// own hints.
func (c *Coordinator) DispatchComposite(ctx context.Context, description, hint string) *models.CompositeResult {
	subs := c.decomposer.Decompose(description)
	if len(subs) == 0 {
		return Combine([]*models.DispatchOutcome{c.Dispatch(ctx, description, hint)})
	}

	c.logger.Log("composite: %d sub-tasks for %q", len(subs), description)
	outcomes := make([]*models.DispatchOutcome, 0, len(subs))
	for _, sub := range subs {
		outcomes = append(outcomes, c.Dispatch(ctx, sub.Description, sub.Hint))
	}
	return Combine(outcomes)
}

// History returns a copy of the task history log, oldest first.
func (c *Coordinator) History() []*models.TaskRecord {
	c.histMu.Lock()
	defer c.histMu.Unlock()
	history := make([]*models.TaskRecord, len(c.history))
	copy(history, c.history)
	return history
}

// Report computes a fresh performance report from the registry and the
// task history as of the call instant. It performs no mutation.
func (c *Coordinator) Report() *models.PerformanceReport {
	var agents []*models.Agent
	for agent := range c.registry.All() {
		agents = append(agents, agent)
	}
	return metrics.BuildReport(agents, c.History())
}

// invoke runs the agent's declared operation for its kind, falling back
// to the generic entry. A panicking operation is converted to an error so
// a misbehaving agent cannot abort the coordinator.
func (c *Coordinator) invoke(ctx context.Context, reg *registration, description string) (payload any, err error) {
	op := reg.table.Select(reg.kind)
	if op == nil {
		return nil, fmt.Errorf("agent %q declares no operations", reg.agent.Name)
	}

	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("agent %q panicked: %v", reg.agent.Name, r)
		}
	}()
	return op(ctx, description)
}

// truncateSummary caps a result summary at summaryLimit runes.
func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit-3]) + "..."
}
