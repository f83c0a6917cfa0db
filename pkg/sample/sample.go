// Package sample builds the demonstration tree and chain used by the CLI.
package sample

import (
	"fmt"

	"nodeclass-hq/nodeclass/pkg/chain"
	"nodeclass-hq/nodeclass/pkg/config"
	"nodeclass-hq/nodeclass/pkg/tree"
)

// Tree builds a root named cfg.RootName with cfg.Children unnamed children.
// The first child receives cfg.FirstBranch children and the second
// cfg.SecondBranch. Every node carries hooks.
func Tree(cfg config.SampleConfig, hooks tree.Hooks) (*tree.Node, error) {
	root := tree.New(cfg.RootName, tree.WithHooks(hooks))

	if err := addUnnamed(root, cfg.Children, hooks); err != nil {
		return nil, err
	}

	branches := []int{cfg.FirstBranch, cfg.SecondBranch}
	for i, count := range branches {
		if i >= root.ChildCount() {
			break
		}
		branch, err := root.Child(tree.ByIndex(i))
		if err != nil {
			return nil, err
		}
		if err := addUnnamed(branch, count, hooks); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func addUnnamed(parent *tree.Node, count int, hooks tree.Hooks) error {
	for i := 0; i < count; i++ {
		if err := parent.AddChild(tree.New("", tree.WithHooks(hooks))); err != nil {
			return fmt.Errorf("add child to %s: %w", parent.Repr(), err)
		}
	}
	return nil
}

// Chain builds start, cfg.ChainLength unnamed nodes, middle, another
// cfg.ChainLength unnamed nodes and end. It returns the start node.
func Chain(cfg config.SampleConfig, hooks chain.Hooks) (*chain.Node, error) {
	var names []string
	names = append(names, "start")
	for i := 0; i < cfg.ChainLength; i++ {
		names = append(names, "")
	}
	names = append(names, "middle")
	for i := 0; i < cfg.ChainLength; i++ {
		names = append(names, "")
	}
	names = append(names, "end")

	start := chain.New(names[0], chain.WithHooks(hooks))
	tail := start
	for _, name := range names[1:] {
		next := chain.New(name, chain.WithHooks(hooks))
		if err := tail.AddChild(next); err != nil {
			return nil, fmt.Errorf("extend chain at %s: %w", tail.Repr(), err)
		}
		tail = next
	}

	return start, nil
}
