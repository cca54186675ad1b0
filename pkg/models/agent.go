// Package models defines the shared data types of the agent coordinator.
package models

import "time"

// AgentStatus represents the availability of an agent.
type AgentStatus string

const (
	// AgentStatusAvailable indicates the agent can accept a task.
	AgentStatusAvailable AgentStatus = "available"
	// AgentStatusBusy indicates the agent is executing a task.
	AgentStatusBusy AgentStatus = "busy"
)

// Valid returns true if the status is a known value.
func (s AgentStatus) Valid() bool {
	switch s {
	case AgentStatusAvailable, AgentStatusBusy:
		return true
	default:
		return false
	}
}

// Agent represents a registered task-executing agent.
// The coordinator's registry owns each Agent for the process lifetime;
// only the dispatcher mutates status and counters, one dispatch at a time.
type Agent struct {
	// Name is the unique identity of the agent.
	Name string `json:"name"`
	// Capabilities are free-text keywords describing what the agent can do.
	Capabilities []string `json:"capabilities"`
	// Status is the current availability of the agent.
	Status AgentStatus `json:"status"`
	// TasksCompleted is the number of dispatches the agent has finished,
	// counting failures as well as successes.
	TasksCompleted int `json:"tasks_completed"`
	// TasksSucceeded is the number of dispatches that returned a result.
	TasksSucceeded int `json:"tasks_succeeded"`
	// TasksFailed is the number of dispatches that ended in an error.
	TasksFailed int `json:"tasks_failed"`
	// TotalTime is the cumulative wall-clock time spent executing tasks.
	TotalTime time.Duration `json:"total_time"`
	// RegisteredAt is when the agent was added to the registry.
	RegisteredAt time.Time `json:"registered_at"`
}

// AverageTime returns the mean wall-clock time per completed task.
// Returns zero when the agent has completed no tasks.
func (a *Agent) AverageTime() time.Duration {
	if a.TasksCompleted == 0 {
		return 0
	}
	return a.TotalTime / time.Duration(a.TasksCompleted)
}
