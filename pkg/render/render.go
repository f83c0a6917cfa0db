// Package render draws tree.Node hierarchies with box-drawing characters.
//
// ReprTree in package tree produces the tab-indented form; this package
// produces the form familiar from the tree(1) command:
//
//	<TreeNode:'root'>
//	├── <TreeNode:'Node'>
//	│   └── <TreeNode:'Node'>
//	└── <TreeNode:'Node1'>
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ddddddO/gtree"

	"nodeclass-hq/nodeclass/pkg/tree"
)

// Box writes the subtree rooted at root to w.
func Box(w io.Writer, root *tree.Node) error {
	if root == nil {
		return fmt.Errorf("render: root is nil")
	}

	if err := gtree.OutputFromRoot(w, convert(root)); err != nil {
		return fmt.Errorf("render %s: %w", root.Repr(), err)
	}
	return nil
}

// BoxString returns the output of Box as a string.
func BoxString(root *tree.Node) (string, error) {
	var buf bytes.Buffer
	if err := Box(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// convert mirrors root into a gtree hierarchy following WalkTree order.
func convert(root *tree.Node) *gtree.Node {
	out := gtree.NewRoot(root.Repr())
	mirror := map[*tree.Node]*gtree.Node{root: out}

	for _, step := range root.WalkTree(false) {
		parent := mirror[step.Node.Parent()]
		mirror[step.Node] = parent.Add(step.Node.Repr())
	}

	return out
}
