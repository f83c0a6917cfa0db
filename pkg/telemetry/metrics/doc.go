// Package metrics provides Prometheus metrics collection for nodeclass.
//
// # Overview
//
// The collector counts structural events of trees and chains through the
// hook interfaces of packages tree and chain, and records the size of every
// walk. Metrics are registered on a caller-provided prometheus.Registry.
//
// # Metrics
//
//   - <namespace>_<subsystem>_node_events_total{kind, event}
//   - <namespace>_<subsystem>_walk_steps{order}
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, prometheus.NewRegistry())
//
//	root := tree.New("root", tree.WithHooks(collector.TreeHooks()))
//	root.AddChild(tree.New("", tree.WithHooks(collector.TreeHooks())))
//
//	collector.RecordWalk("tree", len(root.WalkTree(false)))
//	collector.WriteText(os.Stdout)
//
// Recording is a no-op while MetricsConfig.Enabled is false.
package metrics
