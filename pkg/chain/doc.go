// Package chain provides a linear sequence of named nodes.
//
// A chain node has at most one parent and at most one child, forming a
// doubly linked list from a start node (no parent) to an end node (no
// child). Names are unique across the whole chain; a node joining a chain
// is renamed with a numeric suffix when needed, like tree nodes are among
// their siblings.
//
//	start := chain.New("start")
//	_ = start.End().AddChild(chain.New(""))
//	_ = start.End().AddChild(chain.New("middle"))
//	_ = start.End().AddChild(chain.New(""))
//	fmt.Println(start.ReprChain())
//
//	<ChainNode:0:'start'>
//		<ChainNode:1:'Node'>
//		<ChainNode:2:'middle'>
//		<ChainNode:3:'Node1'>
package chain
