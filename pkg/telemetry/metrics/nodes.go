package metrics

import (
	"nodeclass-hq/nodeclass/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Event label values for node_events_total.
const (
	EventFree          = "free"
	EventRenamed       = "renamed"
	EventParentChanged = "parent_changed"
	EventChildAdded    = "child_added"
	EventChildRemoved  = "child_removed"
	EventChildChanged  = "child_changed"
)

// NodeMetrics tracks structural changes of trees and chains.
//
// Metrics:
//   - nodeclass_nodes_node_events_total: Hook events by node kind and event
//   - nodeclass_nodes_walk_steps: Steps produced per walk by order
type NodeMetrics struct {
	// Hook events
	eventsTotal *prometheus.CounterVec

	// Walk sizes
	walkSteps *prometheus.HistogramVec
}

// NewNodeMetrics creates and registers node metrics with the provided registry.
func NewNodeMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *NodeMetrics {
	nm := &NodeMetrics{
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "node_events_total",
				Help:      "Total number of node hook events",
			},
			[]string{"kind", "event"},
		),

		walkSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "walk_steps",
				Help:      "Number of nodes visited per walk",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 to 16384
			},
			[]string{"order"},
		),
	}

	registry.MustRegister(
		nm.eventsTotal,
		nm.walkSteps,
	)

	return nm
}

// RecordEvent increments the event counter for kind.
func (nm *NodeMetrics) RecordEvent(kind, event string) {
	nm.eventsTotal.WithLabelValues(kind, event).Inc()
}

// RecordWalk observes the number of steps of one walk.
func (nm *NodeMetrics) RecordWalk(order string, steps int) {
	nm.walkSteps.WithLabelValues(order).Observe(float64(steps))
}
