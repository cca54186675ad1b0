// Package metrics computes per-agent efficiency scores and system-wide
// performance reports, and exposes Prometheus collectors for dispatch
// activity.
package metrics

import (
	"github.com/nishantdas/agentcoord/pkg/models"
)

// Efficiency weighting between task volume and speed.
const (
	volumeWeight = 0.6
	speedWeight  = 0.4
)

// Efficiency returns a 0-100 score combining an agent's task volume and
// average speed. An agent with no completed tasks scores 0. The volume
// component is min(tasks*10, 100); the speed component is
// max(0, 100 - averageSeconds*10).
func Efficiency(agent *models.Agent) float64 {
	if agent.TasksCompleted == 0 {
		return 0
	}

	volume := float64(agent.TasksCompleted) * 10
	if volume > 100 {
		volume = 100
	}

	avgSeconds := agent.TotalTime.Seconds() / float64(agent.TasksCompleted)
	speed := 100 - avgSeconds*10
	if speed < 0 {
		speed = 0
	}

	score := volumeWeight*volume + speedWeight*speed
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// BuildReport computes a performance report from an agent snapshot (in
// registration order) and the task history. The most-active agent is the
// one with the most completed tasks; ties keep the earliest-registered
// agent. The result is never cached.
func BuildReport(agents []*models.Agent, history []*models.TaskRecord) *models.PerformanceReport {
	report := &models.PerformanceReport{
		TotalAgents: len(agents),
		TotalTasks:  len(history),
		Agents:      make(map[string]models.AgentReport, len(agents)),
	}

	mostActive := ""
	mostTasks := -1
	for _, agent := range agents {
		report.Agents[agent.Name] = models.AgentReport{
			TasksCompleted:     agent.TasksCompleted,
			AverageTimeSeconds: agent.AverageTime().Seconds(),
			EfficiencyScore:    Efficiency(agent),
			Status:             agent.Status,
		}
		if agent.Status == models.AgentStatusBusy {
			report.Summary.BusyAgents++
		}
		if agent.TasksCompleted > mostTasks {
			mostTasks = agent.TasksCompleted
			mostActive = agent.Name
		}
	}
	report.Summary.MostActiveAgent = mostActive

	if len(history) > 0 {
		succeeded := 0
		var total float64
		for _, record := range history {
			if record.Success {
				succeeded++
			}
			total += record.Elapsed.Seconds()
		}
		report.Summary.SuccessRate = float64(succeeded) / float64(len(history))
		report.Summary.AverageTaskTimeSeconds = total / float64(len(history))
	}

	return report
}
