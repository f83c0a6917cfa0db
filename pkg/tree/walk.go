package tree

import "slices"

// WalkStep is one node visited by a walk.
type WalkStep struct {
	// Path holds the ancestors of Node, nearest first, up to and including
	// the node the walk was started on. Its length is the depth of Node
	// below that node.
	Path []*Node

	// Node is the visited node.
	Node *Node
}

// WalkLevels returns the subtree of n, excluding n, grouped by level: all
// children of n come first, followed by the level-grouped walk of each
// child in turn. With inverse set, siblings are visited last to first.
func (n *Node) WalkLevels(inverse bool) []WalkStep {
	children := n.orderedChildren(inverse)
	walk := make([]WalkStep, 0, len(children))

	for _, child := range children {
		walk = append(walk, WalkStep{Path: []*Node{n}, Node: child})
	}

	for _, child := range children {
		for _, step := range child.WalkLevels(inverse) {
			step.Path = append(step.Path, n)
			walk = append(walk, step)
		}
	}

	return walk
}

// WalkTree returns the subtree of n, excluding n, in depth-first pre-order:
// each child is followed by its own subtree before the next sibling. With
// inverse set, siblings are visited last to first.
func (n *Node) WalkTree(inverse bool) []WalkStep {
	children := n.orderedChildren(inverse)
	walk := make([]WalkStep, 0, len(children))

	for _, child := range children {
		walk = append(walk, WalkStep{Path: []*Node{n}, Node: child})

		for _, step := range child.WalkTree(inverse) {
			step.Path = append(step.Path, n)
			walk = append(walk, step)
		}
	}

	return walk
}

// orderedChildren snapshots the children of n, reversed if inverse is set.
func (n *Node) orderedChildren(inverse bool) []*Node {
	children := slices.Clone(n.children)
	if inverse {
		slices.Reverse(children)
	}
	return children
}
