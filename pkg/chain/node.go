package chain

import (
	"fmt"
	"strconv"
	"strings"

	nodeerrors "nodeclass-hq/nodeclass/pkg/errors"
)

const (
	// DefaultName is the name given to nodes created with an empty name.
	DefaultName = "Node"

	// DefaultKind is the type name shown by Repr.
	DefaultKind = "ChainNode"
)

// Node is one link of a chain. Create nodes with New.
type Node struct {
	name   string
	kind   string
	parent *Node // non-owning
	child  *Node
	hooks  Hooks
}

// Option configures a Node at creation.
type Option func(*Node)

// WithKind sets the type name shown by Repr.
func WithKind(kind string) Option {
	return func(n *Node) {
		if kind != "" {
			n.kind = kind
		}
	}
}

// WithHooks sets the hooks fired on structural changes of the node.
func WithHooks(hooks Hooks) Option {
	return func(n *Node) {
		n.SetHooks(hooks)
	}
}

// New creates a detached node. An empty name becomes DefaultName.
func New(name string, opts ...Option) *Node {
	if name == "" {
		name = DefaultName
	}

	n := &Node{
		name:  name,
		kind:  DefaultKind,
		hooks: NopHooks{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the node name, unique across the whole chain.
func (n *Node) Name() string {
	return n.name
}

// Kind returns the type name shown by Repr.
func (n *Node) Kind() string {
	return n.kind
}

// Parent returns the previous node, or nil at the start of the chain.
func (n *Node) Parent() *Node {
	return n.parent
}

// Child returns the next node, or nil at the end of the chain.
func (n *Node) Child() *Node {
	return n.child
}

// Hooks returns the hooks of the node.
func (n *Node) Hooks() Hooks {
	return n.hooks
}

// SetHooks replaces the hooks of the node. A nil value restores NopHooks.
func (n *Node) SetHooks(hooks Hooks) {
	if hooks == nil {
		hooks = NopHooks{}
	}
	n.hooks = hooks
}

// AddChild links node after n. The linked node and every node after it are
// renamed if their names are already used in the chain. ParentChanged fires
// on node, then ChildChanged on n.
//
// It fails with invalid_argument if node is nil, is n, already has a parent
// or already belongs to the chain of n, and with precondition_failed if n
// already has a child.
func (n *Node) AddChild(node *Node) error {
	if node == nil {
		return nodeerrors.InvalidArgument("add_child", "node is nil")
	}
	if node == n {
		return nodeerrors.InvalidArgument("add_child", "cannot link %s with itself", n.Repr())
	}
	if node.parent != nil {
		return nodeerrors.InvalidArgument("add_child", "%s is already linked after %s", node.Repr(), node.parent.Repr())
	}
	if n.Start() == node {
		return nodeerrors.InvalidArgument("add_child", "%s already belongs to the chain of %s", node.Repr(), n.Repr())
	}
	if n.child != nil {
		return nodeerrors.PreconditionFailed("add_child", "%s is already linked to %s", n.Repr(), n.child.Repr())
	}

	n.child = node
	node.parent = n

	for m := node; m != nil; m = m.child {
		m.Rename(m.name)
	}

	node.hooks.ParentChanged(node)
	n.hooks.ChildChanged(n)

	return nil
}

// RemoveChild unlinks the child of n. ChildChanged fires on n, then
// ParentChanged on the former child.
//
// It fails with precondition_failed if n has no child.
func (n *Node) RemoveChild() error {
	if n.child == nil {
		return nodeerrors.PreconditionFailed("remove_child", "%s has no child", n.Repr())
	}

	child := n.child
	n.child = nil
	child.parent = nil

	n.hooks.ChildChanged(n)
	child.hooks.ParentChanged(child)

	return nil
}

// RemoveParent unlinks n from its parent. ParentChanged fires on n, then
// ChildChanged on the former parent.
//
// It fails with precondition_failed if n has no parent.
func (n *Node) RemoveParent() error {
	if n.parent == nil {
		return nodeerrors.PreconditionFailed("remove_parent", "%s has no parent", n.Repr())
	}

	parent := n.parent
	n.parent = nil
	parent.child = nil

	n.hooks.ParentChanged(n)
	parent.hooks.ChildChanged(parent)

	return nil
}

// Rename sets the name of n. If another node of the chain already uses
// name, an increasing counter is appended (name1, name2, ...) until the
// result is free.
func (n *Node) Rename(name string) {
	candidate := name
	for count := 1; n.nameTaken(candidate); count++ {
		candidate = name + strconv.Itoa(count)
	}
	n.name = candidate
}

// Free releases n and every node after it. The end of the chain is freed
// first; each node fires its Free hook before unlinking from its parent.
// n must not be used afterwards.
func (n *Node) Free() {
	if n.child != nil {
		n.child.Free()
	}

	n.hooks.Free(n)

	if n.parent != nil {
		// cannot fail: n is the child of its parent
		_ = n.parent.RemoveChild()
	}
}

// Index returns the distance of n from the start of its chain.
func (n *Node) Index() int {
	index := 0
	for p := n.parent; p != nil; p = p.parent {
		index++
	}
	return index
}

// Start returns the first node of the chain.
func (n *Node) Start() *Node {
	node := n
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// End returns the last node of the chain.
func (n *Node) End() *Node {
	node := n
	for node.child != nil {
		node = node.child
	}
	return node
}

// Path returns the nodes before n, starting from the first node, or with
// toEnd set the nodes after n up to the last one. n itself is excluded.
func (n *Node) Path(toEnd bool) []*Node {
	path := make([]*Node, 0)

	if toEnd {
		for c := n.child; c != nil; c = c.child {
			path = append(path, c)
		}
		return path
	}

	for p := n.Start(); p != n; p = p.child {
		path = append(path, p)
	}
	return path
}

// Nodes returns every node of the chain from start to end.
func (n *Node) Nodes() []*Node {
	start := n.Start()
	return append([]*Node{start}, start.Path(true)...)
}

// Offset walks |offset| links from n, towards the end for positive values
// and towards the start for negative ones. It returns nil if the chain is
// shorter than that.
func (n *Node) Offset(offset int) *Node {
	node := n

	for ; offset > 0; offset-- {
		if node.child == nil {
			return nil
		}
		node = node.child
	}
	for ; offset < 0; offset++ {
		if node.parent == nil {
			return nil
		}
		node = node.parent
	}

	return node
}

// Find returns the node of the chain called name, or nil.
func (n *Node) Find(name string) *Node {
	for node := n.Start(); node != nil; node = node.child {
		if node.name == name {
			return node
		}
	}
	return nil
}

// Repr returns the representation of n, e.g. "<ChainNode:2:'middle'>".
func (n *Node) Repr() string {
	return fmt.Sprintf("<%s:%d:'%s'>", n.kind, n.Index(), n.name)
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Repr()
}

// ReprChain renders n followed by every node after it, one per line, the
// following nodes indented with a tab.
func (n *Node) ReprChain() string {
	var sb strings.Builder
	sb.WriteString(n.Repr())

	for _, node := range n.Path(true) {
		sb.WriteString("\n\t")
		sb.WriteString(node.Repr())
	}

	return sb.String()
}

func (n *Node) nameTaken(name string) bool {
	for node := n.Start(); node != nil; node = node.child {
		if node != n && node.name == name {
			return true
		}
	}
	return false
}
