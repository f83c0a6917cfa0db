// Nodeclass builds and prints named node hierarchies.
//
// It demonstrates the tree and chain packages on a sample structure sized by
// configuration.
//
// Usage:
//
//	# Print the sample tree and the path of its first grandchild
//	nodeclass demo
//
//	# Draw it with box characters and dump the node event counters
//	nodeclass demo --style box --metrics
//
//	# List every walk step, deepest branches first
//	nodeclass walk --order tree --inverse
//
//	# Print the sample chain
//	nodeclass chain
//
//	# Use a custom configuration file
//	nodeclass demo --config /path/to/nodeclass.yaml
package main

func main() {
	Execute()
}
