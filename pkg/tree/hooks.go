package tree

// Hooks receives structural events of a node.
//
// Each node fires its own hooks: ParentChanged, Renamed and Free are fired
// on the node that changed, ChildAdded and ChildRemoved on the parent.
// Hooks run synchronously after the change has been committed.
type Hooks interface {
	// Free is called on a node after its children were freed and before
	// it detaches from its parent.
	Free(n *Node)

	// Renamed is called after the name of n was set, including the
	// automatic rename performed when n joins a parent.
	Renamed(n *Node)

	// ParentChanged is called after n was attached to or detached from a
	// parent.
	ParentChanged(n *Node)

	// ChildAdded is called on parent after child was attached.
	ChildAdded(parent, child *Node)

	// ChildRemoved is called on parent after child was detached.
	ChildRemoved(parent, child *Node)
}

// NopHooks ignores every event. It is the default for new nodes.
type NopHooks struct{}

func (NopHooks) Free(*Node)                {}
func (NopHooks) Renamed(*Node)             {}
func (NopHooks) ParentChanged(*Node)       {}
func (NopHooks) ChildAdded(*Node, *Node)   {}
func (NopHooks) ChildRemoved(*Node, *Node) {}

// HookFuncs adapts optional callbacks to Hooks. Nil fields are skipped.
type HookFuncs struct {
	OnFree          func(n *Node)
	OnRenamed       func(n *Node)
	OnParentChanged func(n *Node)
	OnChildAdded    func(parent, child *Node)
	OnChildRemoved  func(parent, child *Node)
}

func (h HookFuncs) Free(n *Node) {
	if h.OnFree != nil {
		h.OnFree(n)
	}
}

func (h HookFuncs) Renamed(n *Node) {
	if h.OnRenamed != nil {
		h.OnRenamed(n)
	}
}

func (h HookFuncs) ParentChanged(n *Node) {
	if h.OnParentChanged != nil {
		h.OnParentChanged(n)
	}
}

func (h HookFuncs) ChildAdded(parent, child *Node) {
	if h.OnChildAdded != nil {
		h.OnChildAdded(parent, child)
	}
}

func (h HookFuncs) ChildRemoved(parent, child *Node) {
	if h.OnChildRemoved != nil {
		h.OnChildRemoved(parent, child)
	}
}

type multiHooks []Hooks

// MultiHooks returns Hooks that forwards every event to each of hooks in
// order. Nil entries are dropped.
func MultiHooks(hooks ...Hooks) Hooks {
	m := make(multiHooks, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

func (m multiHooks) Free(n *Node) {
	for _, h := range m {
		h.Free(n)
	}
}

func (m multiHooks) Renamed(n *Node) {
	for _, h := range m {
		h.Renamed(n)
	}
}

func (m multiHooks) ParentChanged(n *Node) {
	for _, h := range m {
		h.ParentChanged(n)
	}
}

func (m multiHooks) ChildAdded(parent, child *Node) {
	for _, h := range m {
		h.ChildAdded(parent, child)
	}
}

func (m multiHooks) ChildRemoved(parent, child *Node) {
	for _, h := range m {
		h.ChildRemoved(parent, child)
	}
}
