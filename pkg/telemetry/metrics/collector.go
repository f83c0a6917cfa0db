package metrics

import (
	"sync"

	"nodeclass-hq/nodeclass/pkg/chain"
	"nodeclass-hq/nodeclass/pkg/config"
	"nodeclass-hq/nodeclass/pkg/tree"

	"github.com/prometheus/client_golang/prometheus"
)

// OtherKind replaces node kinds beyond the cardinality limit.
const OtherKind = "other"

// DefaultMaxKinds bounds the number of distinct kind labels.
const DefaultMaxKinds = 100

// Collector owns the Prometheus registry and the node metrics recorded on it.
//
// Node kinds are caller-defined, so the kind label passes through a
// CardinalityLimiter; kinds seen after the limit is reached are recorded as
// OtherKind.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Node metrics
	nodeMetrics *NodeMetrics

	// Cardinality tracking
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "nodeclass",
//		Subsystem: "nodes",
//	}
//	collector := metrics.NewCollector(cfg, nil)
//	root := tree.New("root", tree.WithHooks(collector.TreeHooks()))
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:             cfg,
		registry:           registry,
		nodeMetrics:        NewNodeMetrics(cfg, registry),
		cardinalityLimiter: NewCardinalityLimiter(DefaultMaxKinds),
	}
}

// RecordEvent records one hook event for a node of the given kind.
func (c *Collector) RecordEvent(kind, event string) {
	if !c.config.Enabled {
		return
	}

	if !c.cardinalityLimiter.Allow(kind) {
		kind = OtherKind
	}

	c.nodeMetrics.RecordEvent(kind, event)
}

// RecordWalk records the number of steps produced by a walk.
//
// Parameters:
//   - order: "tree" or "levels"
//   - steps: number of WalkStep values produced
func (c *Collector) RecordWalk(order string, steps int) {
	if !c.config.Enabled {
		return
	}
	c.nodeMetrics.RecordWalk(order, steps)
}

// TreeHooks returns tree hooks that count every event by node kind.
func (c *Collector) TreeHooks() tree.Hooks {
	return tree.HookFuncs{
		OnFree:          func(n *tree.Node) { c.RecordEvent(n.Kind(), EventFree) },
		OnRenamed:       func(n *tree.Node) { c.RecordEvent(n.Kind(), EventRenamed) },
		OnParentChanged: func(n *tree.Node) { c.RecordEvent(n.Kind(), EventParentChanged) },
		OnChildAdded:    func(parent, _ *tree.Node) { c.RecordEvent(parent.Kind(), EventChildAdded) },
		OnChildRemoved:  func(parent, _ *tree.Node) { c.RecordEvent(parent.Kind(), EventChildRemoved) },
	}
}

// ChainHooks returns chain hooks that count every event by node kind.
func (c *Collector) ChainHooks() chain.Hooks {
	return chain.HookFuncs{
		OnFree:          func(n *chain.Node) { c.RecordEvent(n.Kind(), EventFree) },
		OnParentChanged: func(n *chain.Node) { c.RecordEvent(n.Kind(), EventParentChanged) },
		OnChildChanged:  func(n *chain.Node) { c.RecordEvent(n.Kind(), EventChildChanged) },
	}
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label values.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label value is allowed. Returns true if the value
// already exists or if the limit has not been reached yet.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
