package models

// AgentReport holds the per-agent section of a performance report.
type AgentReport struct {
	// TasksCompleted is the number of dispatches the agent has finished.
	TasksCompleted int `json:"tasksCompleted"`
	// AverageTimeSeconds is the mean execution time per task, in seconds.
	AverageTimeSeconds float64 `json:"averageTimeSeconds"`
	// EfficiencyScore is the derived 0-100 volume/speed metric.
	EfficiencyScore float64 `json:"efficiencyScore"`
	// Status is the agent's availability at report time.
	Status AgentStatus `json:"status"`
}

// ReportSummary holds the system-wide section of a performance report.
type ReportSummary struct {
	// SuccessRate is the fraction of all recorded tasks that succeeded,
	// in [0, 1]. Zero when no tasks have been recorded.
	SuccessRate float64 `json:"successRate"`
	// AverageTaskTimeSeconds is the mean execution time across all
	// recorded tasks, in seconds.
	AverageTaskTimeSeconds float64 `json:"averageTaskTime"`
	// BusyAgents is the number of agents currently executing a task.
	BusyAgents int `json:"busyAgents"`
	// MostActiveAgent is the agent with the most completed tasks,
	// ties broken by registration order. Empty when no agents exist.
	MostActiveAgent string `json:"mostActiveAgent"`
}

// PerformanceReport is a point-in-time snapshot of coordinator activity.
// It is recomputed from the registry and history on every request and
// never cached.
type PerformanceReport struct {
	// TotalAgents is the number of registered agents.
	TotalAgents int `json:"totalAgents"`
	// TotalTasks is the number of entries in the task history.
	TotalTasks int `json:"totalTasks"`
	// Agents maps agent name to its per-agent stats.
	Agents map[string]AgentReport `json:"agents"`
	// Summary holds the system-wide aggregates.
	Summary ReportSummary `json:"summary"`
}
