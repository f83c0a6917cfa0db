package main

import (
	"strconv"
	"strings"

	"nodeclass-hq/nodeclass/pkg/tree"
)

// parseSteps turns path arguments into lookup steps. Arguments that parse
// as integers select by index, anything else by name.
func parseSteps(parts []string) []tree.Step {
	steps := make([]tree.Step, 0, len(parts))
	for _, part := range parts {
		if i, err := strconv.Atoi(part); err == nil {
			steps = append(steps, tree.ByIndex(i))
			continue
		}
		steps = append(steps, tree.ByName(part))
	}
	return steps
}

// splitPath splits a comma separated path. An empty path has no elements.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ",")
}
