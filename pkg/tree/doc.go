// Package tree provides a mutable, ordered hierarchy of named nodes.
//
// A Node owns an ordered list of children and keeps a non-owning pointer to
// its parent. Sibling names are unique: a node joining a parent that already
// has a child with the same name is renamed with an increasing numeric
// suffix ("Node", "Node1", "Node2", ...).
//
// # Core Types
//
// Node: element of the hierarchy, created detached with New
//
// Step: one step of a lookup path, either ByIndex or ByName
//
// WalkStep: one visited node of a traversal, with the ancestors between it
// and the node the walk started from
//
// Hooks: callbacks fired on structural changes (see NopHooks, HookFuncs,
// MultiHooks)
//
// # Basic Usage
//
// Build a tree and address nodes by position or name:
//
//	root := tree.New("root")
//	for i := 0; i < 4; i++ {
//	    if err := root.AddChild(tree.New("")); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	// Children were auto-named Node, Node1, Node2, Node3
//	n, err := root.Child(tree.ByName("Node2"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n.Index()) // 2
//
//	// Negative indices count from the end
//	last, _ := root.Child(tree.ByIndex(-1))
//	fmt.Println(last.Name()) // Node3
//
// Render a subtree:
//
//	fmt.Println(root.ReprTree())
//
//	<TreeNode:'root'>/
//		<TreeNode:'Node'>
//		<TreeNode:'Node1'>
//		...
//
// # Traversal
//
// WalkTree visits the subtree in depth-first pre-order. WalkLevels emits all
// direct children first and then each child's own level-grouped walk. Both
// exclude the node they are called on and can run in reverse sibling order.
//
// # Errors
//
// Mutations validate before changing anything and report failures as
// *errors.Error values of kind invalid_argument or precondition_failed. A
// lookup that finds nothing returns a nil node and a nil error.
//
// # Lifetime
//
// Children are owned by their parent. Free releases a node and its entire
// subtree: children first, then the Free hook, then detachment from the
// parent. A freed node must not be used again.
package tree
