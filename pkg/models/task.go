package models

import "time"

// TaskRecord is one entry in the append-only task history log.
// Records are created once per dispatch and never mutated or deleted;
// they feed reporting and export, never dispatch decisions.
type TaskRecord struct {
	// ID is the unique identifier for this record.
	ID string `json:"id"`
	// Description is the task description as submitted.
	Description string `json:"description"`
	// AgentName is the agent the task was assigned to.
	AgentName string `json:"agent_name"`
	// Timestamp is when the dispatch started.
	Timestamp time.Time `json:"timestamp"`
	// Elapsed is the wall-clock time the dispatch took.
	Elapsed time.Duration `json:"elapsed"`
	// Success indicates whether the agent returned a result.
	Success bool `json:"success"`
	// Summary is a truncated rendering of the agent's result or error.
	Summary string `json:"summary"`
}

// DispatchOutcome is the transient result of one dispatch.
type DispatchOutcome struct {
	// Success indicates whether the dispatch produced a result.
	Success bool `json:"success"`
	// AgentName is the assigned agent, empty when matching failed.
	AgentName string `json:"agent_name,omitempty"`
	// Elapsed is the measured execution time.
	Elapsed time.Duration `json:"elapsed"`
	// Payload is the agent's raw result, opaque to the coordinator.
	Payload any `json:"payload,omitempty"`
	// Error holds the failure text when Success is false.
	Error string `json:"error,omitempty"`
	// Record points at the history entry created for this dispatch.
	// Nil when no agent could be matched.
	Record *TaskRecord `json:"-"`
}

// CompositeResult aggregates an ordered sequence of dispatch outcomes.
type CompositeResult struct {
	// Success is true iff every sub-task succeeded (vacuously true).
	Success bool `json:"success"`
	// TotalSubTasks is the number of sub-tasks dispatched.
	TotalSubTasks int `json:"total_sub_tasks"`
	// Succeeded is the number of sub-tasks that succeeded.
	Succeeded int `json:"succeeded"`
	// Failed is the number of sub-tasks that failed.
	Failed int `json:"failed"`
	// AgentsInvolved lists the distinct agents used, in first-use order.
	AgentsInvolved []string `json:"agents_involved"`
	// TotalElapsed is the summed execution time of all sub-tasks.
	TotalElapsed time.Duration `json:"total_elapsed"`
	// Summary is a generated one-line description of the outcome.
	Summary string `json:"summary"`
	// Outcomes holds the per-sub-task results in dispatch order.
	Outcomes []*DispatchOutcome `json:"outcomes"`
}
