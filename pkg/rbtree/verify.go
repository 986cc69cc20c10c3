package rbtree

import (
	"cmp"
	"fmt"

	"go.uber.org/multierr"
)

const (
	InvariantRootBlack   = "root-black"
	InvariantSentinel    = "sentinel"
	InvariantRedRed      = "red-red"
	InvariantBlackHeight = "black-height"
	InvariantOrder       = "order"
	InvariantParentLink  = "parent-link"
	InvariantSize        = "size"
)

// InvariantError describes one violated red-black tree invariant.
type InvariantError struct {
	Invariant string
	Index     uint32
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("rbtree: invariant %s violated at node #%d: %s", e.Invariant, e.Index, e.Detail)
}

// Verify checks the whole tree against the red-black and binary search
// tree invariants and returns every violation found, combined with
// multierr. It returns nil for a valid tree.
//
// Keys equal to a node's key are accepted on both sides of it: they are
// inserted to the right, but a left rotation can move an equal key into
// the left subtree.
func (tree *Tree[K]) Verify() error {
	if tree.destroyed {
		return ErrDestroyed
	}

	var err error
	violate := func(invariant string, i uint32, format string, args ...interface{}) {
		err = multierr.Append(err, &InvariantError{
			Invariant: invariant,
			Index:     i,
			Detail:    fmt.Sprintf(format, args...),
		})
	}

	sentinel := tree.node(nilIndex)
	if sentinel.color != Black {
		violate(InvariantSentinel, nilIndex, "sentinel is red")
	}
	if sentinel.left != nilIndex || sentinel.right != nilIndex || sentinel.parent != nilIndex {
		violate(InvariantSentinel, nilIndex, "sentinel links are not empty: left=%d right=%d parent=%d",
			sentinel.left, sentinel.right, sentinel.parent)
	}

	if tree.root != nilIndex {
		root := tree.node(tree.root)
		if root.color != Black {
			violate(InvariantRootBlack, tree.root, "root is red")
		}
		if root.parent != nilIndex {
			violate(InvariantParentLink, tree.root, "root parent is #%d", root.parent)
		}
	}

	// per-slot results of the post-order walk
	slots := len(tree.arena.nodes)
	blackHeight := make([]int, slots)
	minKey := make([]K, slots)
	maxKey := make([]K, slots)

	count := 0
	tree.postorder(func(i uint32) bool {
		count++
		if count > tree.arena.live {
			violate(InvariantSize, i, "walk visits more nodes than the %d allocated", tree.arena.live)
			return false
		}

		n := tree.node(i)
		if !n.live {
			violate(InvariantParentLink, i, "released slot is linked into the tree")
		}

		minKey[i], maxKey[i] = n.key, n.key
		leftHeight, rightHeight := 1, 1

		if n.left != nilIndex {
			if l := tree.node(n.left); l.parent != i {
				violate(InvariantParentLink, n.left, "parent is #%d, expected #%d", l.parent, i)
			}
			if n.color == Red && tree.node(n.left).color == Red {
				violate(InvariantRedRed, i, "red node has red left child #%d", n.left)
			}
			if cmp.Less(n.key, maxKey[n.left]) {
				violate(InvariantOrder, i, "left subtree holds %v, greater than %v", maxKey[n.left], n.key)
			}
			minKey[i] = minKey[n.left]
			leftHeight = blackHeight[n.left]
		}

		if n.right != nilIndex {
			if r := tree.node(n.right); r.parent != i {
				violate(InvariantParentLink, n.right, "parent is #%d, expected #%d", r.parent, i)
			}
			if n.color == Red && tree.node(n.right).color == Red {
				violate(InvariantRedRed, i, "red node has red right child #%d", n.right)
			}
			if cmp.Less(minKey[n.right], n.key) {
				violate(InvariantOrder, i, "right subtree holds %v, less than %v", minKey[n.right], n.key)
			}
			maxKey[i] = maxKey[n.right]
			rightHeight = blackHeight[n.right]
		}

		if leftHeight != rightHeight {
			violate(InvariantBlackHeight, i, "left black-height %d, right black-height %d", leftHeight, rightHeight)
		}

		blackHeight[i] = leftHeight
		if n.color == Black {
			blackHeight[i]++
		}

		return true
	})

	if count != tree.size {
		violate(InvariantSize, tree.root, "tree reports %d keys, %d nodes reachable", tree.size, count)
	}

	if tree.arena.live != tree.size {
		violate(InvariantSize, nilIndex, "%d slots in use for %d keys", tree.arena.live, tree.size)
	}

	return err
}
