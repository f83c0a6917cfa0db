package tree

import (
	"slices"

	nodeerrors "nodeclass-hq/nodeclass/pkg/errors"
)

// Step is one step of a lookup path passed to Child.
// The implementations are ByIndex and ByName.
type Step interface {
	resolve(n *Node) (*Node, bool)
}

// ByIndex selects a child by position. Negative values count from the end.
type ByIndex int

// ByName selects the child with exactly this name.
type ByName string

func (i ByIndex) resolve(n *Node) (*Node, bool) {
	count := len(n.children)
	p := int(i)

	if p >= 0 {
		if p > count-1 {
			return nil, false
		}
		return n.children[p], true
	}

	if -p > count {
		return nil, false
	}
	return n.children[count+p], true
}

func (s ByName) resolve(n *Node) (*Node, bool) {
	for _, child := range n.children {
		if child.name == string(s) {
			return child, true
		}
	}
	return nil, false
}

// Index returns the position of n among its siblings, or NoIndex for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return NoIndex
	}
	return slices.Index(n.parent.children, n)
}

// Root returns the topmost ancestor of n, or n itself if it has no parent.
func (n *Node) Root() *Node {
	node := n
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Path returns the ancestors of n ordered from the root down to the parent.
// It is empty for a root.
func (n *Node) Path() []*Node {
	path := make([]*Node, 0)
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child resolves path step by step starting from n and returns the last
// node reached.
//
// Any step that cannot be resolved ends the whole lookup: Child returns a
// nil node and a nil error. An empty path also yields nil. A nil step fails
// with invalid_argument when the lookup reaches it.
//
//	root.Child(tree.ByIndex(0), tree.ByName("config"), tree.ByIndex(-1))
func (n *Node) Child(path ...Step) (*Node, error) {
	current := n
	var found *Node

	for i, step := range path {
		if step == nil {
			return nil, nodeerrors.InvalidArgument("get_child", "path step %d is nil", i)
		}

		next, ok := step.resolve(current)
		if !ok {
			return nil, nil
		}

		current = next
		found = next
	}

	return found, nil
}
