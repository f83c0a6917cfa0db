package tree

import "testing"

// buildSample builds the reference tree:
//
//	root
//	├── Node  (Node, Node1, Node2, Node3)
//	├── Node1 (Node, Node1)
//	├── Node2
//	└── Node3
func buildSample(t *testing.T, opts ...Option) *Node {
	t.Helper()

	root := New("root", opts...)
	for i := 0; i < 4; i++ {
		mustAdd(t, root, New("", opts...))
	}
	for i := 0; i < 4; i++ {
		mustAdd(t, mustChild(t, root, ByIndex(0)), New("", opts...))
	}
	for i := 0; i < 2; i++ {
		mustAdd(t, mustChild(t, root, ByIndex(1)), New("", opts...))
	}

	return root
}

func mustAdd(t *testing.T, parent, child *Node) {
	t.Helper()
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild(%s) error = %v", child, err)
	}
}

func mustChild(t *testing.T, n *Node, path ...Step) *Node {
	t.Helper()
	child, err := n.Child(path...)
	if err != nil {
		t.Fatalf("Child() error = %v", err)
	}
	if child == nil {
		t.Fatalf("Child(%v) not found under %s", path, n)
	}
	return child
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

// countDescendants counts every node below n.
func countDescendants(n *Node) int {
	total := 0
	for _, child := range n.children {
		total += 1 + countDescendants(child)
	}
	return total
}
