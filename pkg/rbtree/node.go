package rbtree

import (
	"cmp"
	"fmt"
)

// nilIndex is the arena slot of the sentinel node.
const nilIndex uint32 = 0

/*
node
A red node always has black children.
A black node may have red or black children
*/
type node[K cmp.Ordered] struct {
	left, right, parent uint32
	key                 K
	color               Color

	// gen is bumped every time the slot is released, so handles issued
	// for a previous occupant no longer match.
	gen  uint32
	live bool
}

// NodeRef is a handle to a node of a Tree. The zero value never refers to
// a node.
type NodeRef struct {
	tree  uint64
	index uint32
	gen   uint32
}

func (r NodeRef) String() string {
	return fmt.Sprintf("node#%d@%d/tree#%d", r.index, r.gen, r.tree)
}
