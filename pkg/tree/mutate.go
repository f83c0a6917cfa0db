package tree

import (
	"slices"
	"strconv"

	nodeerrors "nodeclass-hq/nodeclass/pkg/errors"
)

// AddChild appends child to the children of n. See InsertChild.
func (n *Node) AddChild(child *Node) error {
	return n.InsertChild(child, -1)
}

// InsertChild attaches child to n at position index.
//
// A non-negative index is clamped to [0, ChildCount()]. A negative index
// counts from the end so that -1 appends, -2 inserts before the last child
// and so on; positions before the front clamp to 0.
//
// The child is renamed if a sibling already uses its name. Then
// ParentChanged fires on child and ChildAdded on n.
//
// It fails with invalid_argument if child is nil, is n itself, already has a
// parent, or is an ancestor of n.
func (n *Node) InsertChild(child *Node, index int) error {
	if child == nil {
		return nodeerrors.InvalidArgument("add_child", "child is nil")
	}
	if child == n {
		return nodeerrors.InvalidArgument("add_child", "cannot parent %s with itself", n.Repr())
	}
	if child.parent != nil {
		return nodeerrors.InvalidArgument("add_child", "%s is already a child of %s", child.Repr(), child.parent.Repr())
	}
	if n.isDescendantOf(child) {
		return nodeerrors.InvalidArgument("add_child", "%s is an ancestor of %s", child.Repr(), n.Repr())
	}

	position := insertPosition(index, len(n.children))
	n.children = slices.Insert(n.children, position, child)
	child.parent = n

	// Re-apply the current name so it becomes unique among the new siblings
	child.Rename(child.name)

	child.hooks.ParentChanged(child)
	n.hooks.ChildAdded(n, child)

	return nil
}

// RemoveChild detaches child from n. ParentChanged fires on child, then
// ChildRemoved on n.
//
// It fails with invalid_argument if child is nil or not a child of n.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil {
		return nodeerrors.InvalidArgument("remove_child", "child is nil")
	}
	if child.parent != n {
		return nodeerrors.InvalidArgument("remove_child", "%s is not a child of %s", child.Repr(), n.Repr())
	}

	i := slices.Index(n.children, child)
	child.parent = nil
	n.children = slices.Delete(n.children, i, i+1)

	child.hooks.ParentChanged(child)
	n.hooks.ChildRemoved(n, child)

	return nil
}

// MoveChild moves child to position index among the children of n.
//
// The child is taken out first and then inserted with list semantics on the
// shortened list: a negative index counts from the end (-1 lands before the
// last remaining child) and out-of-range positions land at the nearest end.
// No hooks fire.
//
// It fails with invalid_argument if child is nil or not a child of n.
func (n *Node) MoveChild(child *Node, index int) error {
	if child == nil {
		return nodeerrors.InvalidArgument("move_child", "child is nil")
	}
	if child.parent != n {
		return nodeerrors.InvalidArgument("move_child", "%s is not a child of %s", child.Repr(), n.Repr())
	}

	i := slices.Index(n.children, child)
	n.children = slices.Delete(n.children, i, i+1)
	n.children = slices.Insert(n.children, listPosition(index, len(n.children)), child)

	return nil
}

// Remove detaches n from its parent.
//
// It fails with precondition_failed if n has no parent.
func (n *Node) Remove() error {
	if n.parent == nil {
		return nodeerrors.PreconditionFailed("remove", "%s has no parent", n.Repr())
	}
	return n.parent.RemoveChild(n)
}

// Move moves n to position index among its siblings. See MoveChild.
//
// It fails with precondition_failed if n has no parent.
func (n *Node) Move(index int) error {
	if n.parent == nil {
		return nodeerrors.PreconditionFailed("move", "%s has no parent", n.Repr())
	}
	return n.parent.MoveChild(n, index)
}

// Rename sets the name of n and fires Renamed.
//
// When n has a parent and a sibling already uses name, an increasing
// counter is appended (name1, name2, ...) until the result is free. The
// search is unbounded, so a parent with many equally named children makes
// each rename linear in their number.
func (n *Node) Rename(name string) {
	if n.parent != nil {
		candidate := name
		for count := 1; n.parent.hasSiblingNamed(n, candidate); count++ {
			candidate = name + strconv.Itoa(count)
		}
		name = candidate
	}

	n.name = name
	n.hooks.Renamed(n)
}

// Free releases n and its subtree.
//
// The children present at the time of the call are freed first, then the
// Free hook fires and finally n detaches from its parent. n must not be used
// afterwards.
func (n *Node) Free() {
	for _, child := range slices.Clone(n.children) {
		child.Free()
	}

	n.hooks.Free(n)

	if n.parent != nil {
		// cannot fail: n is a child of its parent
		_ = n.parent.RemoveChild(n)
	}
}

// insertPosition maps an InsertChild index to a slice position in [0, count].
func insertPosition(index, count int) int {
	if index >= 0 {
		return min(index, count)
	}
	if -index > count {
		return 0
	}
	return count + index + 1
}

// listPosition maps a MoveChild index to a slice position in [0, count].
func listPosition(index, count int) int {
	if index < 0 {
		index += count
		if index < 0 {
			return 0
		}
	}
	return min(index, count)
}
