package rbtree

// ToArray writes the keys of the tree in ascending order into buf, up to
// len(buf) keys, and returns how many were written. A result equal to
// len(buf) that is smaller than Len() means the export was truncated.
func (tree *Tree[K]) ToArray(buf []K) int {
	if tree.destroyed {
		return 0
	}

	n := 0
	tree.inorder(func(i uint32) bool {
		if n == len(buf) {
			return false
		}

		buf[n] = tree.node(i).key
		n++
		return true
	})
	return n
}

// Keys returns all keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, tree.Len())
	n := tree.ToArray(keys)
	return keys[:n]
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (tree *Tree[K]) Ascend(fn func(key K) bool) {
	if tree.destroyed {
		return
	}

	for i := tree.leftmostOf(tree.root); i != nilIndex; i = tree.successorOf(i) {
		if !fn(tree.node(i).key) {
			return
		}
	}
}

// Descend calls fn for every key in descending order until fn returns false.
func (tree *Tree[K]) Descend(fn func(key K) bool) {
	if tree.destroyed {
		return
	}

	for i := tree.rightmostOf(tree.root); i != nilIndex; i = tree.predecessorOf(i) {
		if !fn(tree.node(i).key) {
			return
		}
	}
}

// Height returns the number of nodes on the longest path from the root to
// a leaf.
func (tree *Tree[K]) Height() int {
	if tree.destroyed || tree.root == nilIndex {
		return 0
	}

	type entry struct {
		index uint32
		depth int
	}

	height := 0
	stack := []entry{{tree.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.depth > height {
			height = e.depth
		}

		n := tree.node(e.index)
		if n.left != nilIndex {
			stack = append(stack, entry{n.left, e.depth + 1})
		}
		if n.right != nilIndex {
			stack = append(stack, entry{n.right, e.depth + 1})
		}
	}

	return height
}

// inorder visits the nodes in ascending key order until cb returns false.
func (tree *Tree[K]) inorder(cb func(i uint32) bool) {
	var stack []uint32
	var current = tree.root
	for current != nilIndex || len(stack) > 0 {
		for current != nilIndex {
			stack = append(stack, current)
			current = tree.node(current).left
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !cb(current) {
			return
		}

		current = tree.node(current).right
	}
}

// postorder visits children before their parent until cb returns false.
// cb may release the node it is given.
func (tree *Tree[K]) postorder(cb func(i uint32) bool) {
	var stack []uint32
	var last = nilIndex
	var current = tree.root
	for current != nilIndex || len(stack) > 0 {
		if current != nilIndex {
			stack = append(stack, current)
			current = tree.node(current).left
			continue
		}

		top := stack[len(stack)-1]
		if right := tree.node(top).right; right != nilIndex && right != last {
			current = right
			continue
		}

		stack = stack[:len(stack)-1]
		last = top
		if !cb(top) {
			return
		}
	}
}
