package tree

import (
	"fmt"
	"strings"
)

// DefaultPathSeparator separates nodes in ReprPath.
const DefaultPathSeparator = " => "

// Repr returns the representation of n, e.g. "<TreeNode:'root'>".
func (n *Node) Repr() string {
	return fmt.Sprintf("<%s:'%s'>", n.kind, n.name)
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Repr()
}

// ReprTree renders n and its subtree, one node per line. Each line is
// indented with one tab per level below n, and nodes with children end
// with "/".
func (n *Node) ReprTree() string {
	var sb strings.Builder
	sb.WriteString(n.treeEntry())

	for _, step := range n.WalkTree(false) {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("\t", len(step.Path)))
		sb.WriteString(step.Node.treeEntry())
	}

	return sb.String()
}

// ReprPath renders the ancestors of n from the root down to the parent,
// joined with DefaultPathSeparator. It is empty for a root.
func (n *Node) ReprPath() string {
	return n.JoinPath(DefaultPathSeparator)
}

// JoinPath is ReprPath with a custom separator.
func (n *Node) JoinPath(separator string) string {
	path := n.Path()
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.Repr()
	}
	return strings.Join(parts, separator)
}

func (n *Node) treeEntry() string {
	if n.HasChildren() {
		return n.Repr() + "/"
	}
	return n.Repr()
}
