package logging

import (
	"nodeclass-hq/nodeclass/pkg/chain"
	"nodeclass-hq/nodeclass/pkg/tree"
)

// TreeHooks returns tree hooks that log every structural event at debug level.
func TreeHooks(cl *ContextLogger) tree.Hooks {
	return tree.HookFuncs{
		OnFree: func(n *tree.Node) {
			cl.Debug("node freed", "node", n.Repr())
		},
		OnRenamed: func(n *tree.Node) {
			cl.Debug("node renamed", "node", n.Repr())
		},
		OnParentChanged: func(n *tree.Node) {
			cl.Debug("node parent changed", "node", n.Repr(), "parent", reprOrNone(n.Parent()))
		},
		OnChildAdded: func(parent, child *tree.Node) {
			cl.Debug("child added", "parent", parent.Repr(), "child", child.Repr(), "index", child.Index())
		},
		OnChildRemoved: func(parent, child *tree.Node) {
			cl.Debug("child removed", "parent", parent.Repr(), "child", child.Repr())
		},
	}
}

// ChainHooks returns chain hooks that log every structural event at debug level.
func ChainHooks(cl *ContextLogger) chain.Hooks {
	return chain.HookFuncs{
		OnFree: func(n *chain.Node) {
			cl.Debug("chain node freed", "node", n.Repr())
		},
		OnParentChanged: func(n *chain.Node) {
			cl.Debug("chain node parent changed", "node", n.Repr())
		},
		OnChildChanged: func(n *chain.Node) {
			cl.Debug("chain node child changed", "node", n.Repr())
		},
	}
}

func reprOrNone(n *tree.Node) string {
	if n == nil {
		return "none"
	}
	return n.Repr()
}
