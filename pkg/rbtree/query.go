package rbtree

import "cmp"

// Find returns a node holding key. With duplicates, the one closest to the
// root is returned.
func (tree *Tree[K]) Find(key K) (NodeRef, bool) {
	if tree.destroyed {
		return NodeRef{}, false
	}

	i := tree.search(key)
	if i == nilIndex {
		return NodeRef{}, false
	}

	return tree.ref(i), true
}

// Min returns the node with the smallest key.
func (tree *Tree[K]) Min() (NodeRef, bool) {
	if tree.destroyed || tree.root == nilIndex {
		return NodeRef{}, false
	}

	return tree.ref(tree.leftmostOf(tree.root)), true
}

// Max returns the node with the largest key.
func (tree *Tree[K]) Max() (NodeRef, bool) {
	if tree.destroyed || tree.root == nilIndex {
		return NodeRef{}, false
	}

	return tree.ref(tree.rightmostOf(tree.root)), true
}

// Successor returns the in-order next node of ref.
func (tree *Tree[K]) Successor(ref NodeRef) (NodeRef, bool) {
	i, err := tree.resolve(ref)
	if err != nil {
		return NodeRef{}, false
	}

	next := tree.successorOf(i)
	if next == nilIndex {
		return NodeRef{}, false
	}

	return tree.ref(next), true
}

// Predecessor returns the in-order previous node of ref.
func (tree *Tree[K]) Predecessor(ref NodeRef) (NodeRef, bool) {
	i, err := tree.resolve(ref)
	if err != nil {
		return NodeRef{}, false
	}

	prev := tree.predecessorOf(i)
	if prev == nilIndex {
		return NodeRef{}, false
	}

	return tree.ref(prev), true
}

func (tree *Tree[K]) search(key K) uint32 {
	var current = tree.root
	for current != nilIndex {
		n := tree.node(current)
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			current = n.left
		case c > 0:
			current = n.right
		default:
			return current
		}
	}

	return nilIndex
}

func (tree *Tree[K]) leftmostOf(current uint32) uint32 {
	for current != nilIndex && tree.node(current).left != nilIndex {
		current = tree.node(current).left
	}

	return current
}

func (tree *Tree[K]) rightmostOf(current uint32) uint32 {
	for current != nilIndex && tree.node(current).right != nilIndex {
		current = tree.node(current).right
	}

	return current
}

func (tree *Tree[K]) successorOf(current uint32) uint32 {
	if right := tree.node(current).right; right != nilIndex {
		return tree.leftmostOf(right)
	}

	// otherwise walk up until we find a node that is a left child of its parent
	var suc = tree.node(current).parent
	for suc != nilIndex && current == tree.node(suc).right {
		current = suc
		suc = tree.node(suc).parent
	}

	return suc
}

func (tree *Tree[K]) predecessorOf(current uint32) uint32 {
	if left := tree.node(current).left; left != nilIndex {
		return tree.rightmostOf(left)
	}

	var pred = tree.node(current).parent
	for pred != nilIndex && current == tree.node(pred).left {
		current = pred
		pred = tree.node(pred).parent
	}

	return pred
}
