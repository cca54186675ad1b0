package coordinator

import (
	"fmt"

	"github.com/nishantdas/agentcoord/pkg/models"
)

// Combine aggregates an ordered sequence of dispatch outcomes into one
// composite result. Overall success is the AND of all sub-outcome
// successes, vacuously true for zero outcomes. The distinct-agent set
// keeps first-use order.
func Combine(outcomes []*models.DispatchOutcome) *models.CompositeResult {
	result := &models.CompositeResult{
		Success:       true,
		TotalSubTasks: len(outcomes),
		Outcomes:      outcomes,
	}

	seen := make(map[string]bool)
	for _, outcome := range outcomes {
		if outcome.Success {
			result.Succeeded++
		} else {
			result.Failed++
			result.Success = false
		}
		result.TotalElapsed += outcome.Elapsed
		if outcome.AgentName != "" && !seen[outcome.AgentName] {
			seen[outcome.AgentName] = true
			result.AgentsInvolved = append(result.AgentsInvolved, outcome.AgentName)
		}
	}

	rate := 100.0
	if result.TotalSubTasks > 0 {
		rate = 100 * float64(result.Succeeded) / float64(result.TotalSubTasks)
	}

	var phrase string
	switch {
	case rate == 100:
		phrase = "all tasks completed successfully"
	case rate > 70:
		phrase = "most tasks completed successfully"
	default:
		phrase = "several tasks encountered issues"
	}
	result.Summary = fmt.Sprintf("Executed %d sub-tasks across %d agents; %s (%.0f%% success rate)",
		result.TotalSubTasks, len(result.AgentsInvolved), phrase, rate)

	return result
}
