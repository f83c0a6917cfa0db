package tree

import "slices"

const (
	// DefaultName is the name given to nodes created with an empty name.
	DefaultName = "Node"

	// DefaultKind is the type name shown by Repr.
	DefaultKind = "TreeNode"

	// NoIndex is the index of a node without a parent.
	NoIndex = -1
)

// Node is an element of the hierarchy.
//
// The zero value is not usable; create nodes with New. A Node is not safe
// for concurrent use.
type Node struct {
	name     string
	kind     string
	parent   *Node // non-owning
	children []*Node
	hooks    Hooks
}

// Option configures a Node at creation.
type Option func(*Node)

// WithKind sets the type name shown by Repr, e.g. "<Folder:'docs'>".
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
		name:     name,
		kind:     DefaultKind,
		children: make([]*Node, 0),
		hooks:    NopHooks{},
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Name returns the node name, unique among its current siblings.
func (n *Node) Name() string {
	return n.name
}

// Kind returns the type name shown by Repr.
func (n *Node) Kind() string {
	return n.kind
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
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

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// isDescendantOf reports whether ancestor is n or one of n's ancestors.
func (n *Node) isDescendantOf(ancestor *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// hasSiblingNamed reports whether a child of n other than self is called name.
func (n *Node) hasSiblingNamed(self *Node, name string) bool {
	for _, child := range n.children {
		if child != self && child.name == name {
			return true
		}
	}
	return false
}
