package rbtree

// rotateLeft
// x is the axes of rotation, y is the node that will be replace x's position.
// we need to:
// 1. move y's left child to the x's right child
// 2. change y's parent to x's parent
// 3. change x's parent to y
func (tree *Tree[K]) rotateLeft(x uint32) {
	xn := tree.node(x)
	y := xn.right
	if y == nilIndex {
		log.Panicf("rotate left: right child of node #%d is the sentinel", x)
	}

	yn := tree.node(y)
	xn.right = yn.left
	if yn.left != nilIndex {
		tree.node(yn.left).parent = x
	}

	yn.parent = xn.parent
	tree.replaceChild(xn.parent, x, y)

	yn.left = x
	xn.parent = y

	tree.observeRotate(Left)
}

func (tree *Tree[K]) rotateRight(y uint32) {
	yn := tree.node(y)
	x := yn.left
	if x == nilIndex {
		log.Panicf("rotate right: left child of node #%d is the sentinel", y)
	}

	xn := tree.node(x)
	yn.left = xn.right
	if xn.right != nilIndex {
		tree.node(xn.right).parent = y
	}

	xn.parent = yn.parent
	tree.replaceChild(yn.parent, y, x)

	xn.right = y
	yn.parent = x

	tree.observeRotate(Right)
}

// replaceChild points the link of parent that refers to old at v instead.
// A sentinel parent means old was the root.
func (tree *Tree[K]) replaceChild(parent, old, v uint32) {
	if parent == nilIndex {
		tree.root = v
		return
	}

	pn := tree.node(parent)
	if old == pn.left {
		pn.left = v
	} else {
		pn.right = v
	}
}

// transplant replaces sub-tree rooted at u with subtree rooted at v.
// v may be the sentinel, whose parent link is then set so that the delete
// fix-up can find its way up.
func (tree *Tree[K]) transplant(u, v uint32) {
	parent := tree.node(u).parent
	tree.replaceChild(parent, u, v)
	tree.node(v).parent = parent
}
