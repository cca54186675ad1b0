package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "agentcoord"

var (
	// DispatchesTotal counts dispatches by agent and final status.
	// Status "unmatched" marks dispatches that found no suitable agent.
	DispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "Total number of task dispatches, labeled by agent and status.",
		},
		[]string{"agent", "status"},
	)

	// DispatchSeconds observes wall-clock dispatch latency per agent.
	DispatchSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_seconds",
			Help:      "Wall-clock task execution latency per agent (seconds).",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"agent"},
	)

	// RegisteredAgents tracks the size of the agent registry.
	RegisteredAgents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registered_agents",
			Help:      "Number of registered agents.",
		},
	)

	// BusyAgents tracks agents currently executing a task.
	BusyAgents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "busy_agents",
			Help:      "Number of agents currently executing a task.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		DispatchesTotal,
		DispatchSeconds,
		RegisteredAgents,
		BusyAgents,
	)
}
