// Package rbtree implements an ordered set of scalar keys backed by a
// red-black tree.
//
// Nodes are kept in an arena owned by the tree and addressed by uint32
// indices. Index 0 is the sentinel: a BLACK terminator shared by every leaf
// and used as the parent of the root. Callers refer to nodes through NodeRef
// handles, which are checked on every use so that a handle from another tree
// or one that was already erased is reported as ErrInvalidNode instead of
// corrupting the structure.
//
// Duplicate keys are allowed and are routed to the right subtree.
//
// A Tree is not safe for concurrent use.
package rbtree
