// Package telemetry groups the observability packages of nodeclass.
//
// # Components
//
//   - logging: Structured logging on log/slog, plus hooks that log every
//     tree and chain mutation at debug level
//   - metrics: Prometheus counters of node hook events and walk sizes
//
// Both attach to node structures through the hook interfaces of packages
// tree and chain, and can be combined with tree.MultiHooks or
// chain.MultiHooks.
package telemetry
