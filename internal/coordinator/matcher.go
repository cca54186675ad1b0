package coordinator

import (
	"sort"
	"strings"

	"github.com/nishantdas/agentcoord/internal/worker"
	"github.com/nishantdas/agentcoord/pkg/models"
)

// Matcher scores and ranks registered agents against a task description
// and an optional category hint.
type Matcher struct {
	registry *Registry
}

// NewMatcher creates a Matcher over the given registry.
func NewMatcher(registry *Registry) *Matcher {
	return &Matcher{registry: registry}
}

// Match returns candidate agents for the task, best first.
//
// Without a hint every agent is a candidate; capability overlap never
// narrows the field, so load balancing works across the whole roster.
// When a hint is supplied, only agents whose name contains it as a
// case-insensitive substring are eligible; the result is empty only when
// the hint matches no name. Among hinted agents, those whose capability
// tag words overlap the task tokens are preferred; when none overlap,
// all hinted agents are kept so that a hinted task still finds an agent.
//
// Candidates are ordered by availability (available first), then by
// ascending tasks completed for load balancing. Ties keep registration
// order.
func (m *Matcher) Match(description, hint string) []*models.Agent {
	tokens := tokenSet(description)
	hint = strings.ToLower(hint)

	var eligible []*models.Agent
	var matched []*models.Agent
	for _, reg := range m.registry.snapshot() {
		agent := reg.agent
		if hint != "" && !strings.Contains(strings.ToLower(agent.Name), hint) {
			continue
		}
		eligible = append(eligible, agent)
		if matchCount(agent.Capabilities, tokens) > 0 {
			matched = append(matched, agent)
		}
	}

	candidates := eligible
	if hint != "" && len(matched) > 0 {
		candidates = matched
	}

	ranked := make([]*models.Agent, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Status != ranked[j].Status {
			return ranked[i].Status == models.AgentStatusAvailable
		}
		return ranked[i].TasksCompleted < ranked[j].TasksCompleted
	})
	return ranked
}

// matchCount counts the capability tags with at least one word present
// among the task tokens. Tags are themselves split into words, so a
// tag like "web_search" matches a task mentioning "search".
func matchCount(capabilities []string, tokens map[string]bool) int {
	count := 0
	for _, tag := range capabilities {
		for _, word := range worker.Tokenize(tag) {
			if tokens[word] {
				count++
				break
			}
		}
	}
	return count
}

// tokenSet tokenizes text into a lowercase word set.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range worker.Tokenize(text) {
		set[w] = true
	}
	return set
}
