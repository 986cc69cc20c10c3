package rbtree

import "github.com/pkg/errors"

var (
	// ErrInvalidNode is returned when a NodeRef does not refer to a live
	// node of the tree it is passed to.
	ErrInvalidNode = errors.New("rbtree: invalid node reference")

	// ErrCapacityExhausted is returned by Insert when no node can be
	// allocated.
	ErrCapacityExhausted = errors.New("rbtree: node capacity exhausted")

	// ErrDestroyed is returned by mutating calls on a destroyed tree.
	ErrDestroyed = errors.New("rbtree: tree is destroyed")
)
