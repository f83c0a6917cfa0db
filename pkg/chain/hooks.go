package chain

// Hooks receives structural events of a chain node.
type Hooks interface {
	// Free is called after the nodes following n were freed and before n
	// unlinks from its parent.
	Free(n *Node)

	// ParentChanged is called after n was linked to or unlinked from a
	// parent.
	ParentChanged(n *Node)

	// ChildChanged is called after a child was linked to or unlinked from n.
	ChildChanged(n *Node)
}

// NopHooks ignores every event.
type NopHooks struct{}

func (NopHooks) Free(*Node)          {}
func (NopHooks) ParentChanged(*Node) {}
func (NopHooks) ChildChanged(*Node)  {}

// HookFuncs adapts optional callbacks to Hooks. Nil fields are skipped.
type HookFuncs struct {
	OnFree          func(n *Node)
	OnParentChanged func(n *Node)
	OnChildChanged  func(n *Node)
}

func (h HookFuncs) Free(n *Node) {
	if h.OnFree != nil {
		h.OnFree(n)
	}
}

func (h HookFuncs) ParentChanged(n *Node) {
	if h.OnParentChanged != nil {
		h.OnParentChanged(n)
	}
}

func (h HookFuncs) ChildChanged(n *Node) {
	if h.OnChildChanged != nil {
		h.OnChildChanged(n)
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

func (m multiHooks) ParentChanged(n *Node) {
	for _, h := range m {
		h.ParentChanged(n)
	}
}

func (m multiHooks) ChildChanged(n *Node) {
	for _, h := range m {
		h.ChildChanged(n)
	}
}
