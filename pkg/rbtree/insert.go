package rbtree

import "cmp"

// Insert adds key to the tree and returns a handle to the new node.
// Duplicate keys are kept; a key equal to an existing one goes to its
// right subtree.
func (tree *Tree[K]) Insert(key K) (NodeRef, error) {
	if tree.destroyed {
		return NodeRef{}, ErrDestroyed
	}

	z, err := tree.arena.alloc()
	if err != nil {
		return NodeRef{}, err
	}

	tree.stats.Alloc++

	var y = nilIndex
	var x = tree.root
	for x != nilIndex {
		y = x

		if cmp.Less(key, tree.node(x).key) {
			x = tree.node(x).left
		} else {
			x = tree.node(x).right
		}
	}

	zn := tree.node(z)
	zn.key = key
	zn.parent = y
	zn.left = nilIndex
	zn.right = nilIndex
	zn.color = Red

	if y == nilIndex {
		tree.root = z
	} else if cmp.Less(key, tree.node(y).key) {
		tree.node(y).left = z
	} else {
		tree.node(y).right = z
	}

	tree.insertFixup(z)

	tree.size++
	tree.stats.Inserts++
	return tree.ref(z), nil
}

func (tree *Tree[K]) insertFixup(z uint32) {
	// A red node can't have a red parent, we need to fix it up
	for tree.node(tree.node(z).parent).color == Red {
		p := tree.node(z).parent
		g := tree.node(p).parent

		if p == tree.node(g).left {
			uncle := tree.node(g).right
			if tree.node(uncle).color == Red {
				tree.observeInsert(InsertUncleRed)
				tree.node(p).color = Black
				tree.node(uncle).color = Black
				tree.node(g).color = Red
				z = g
				continue
			}

			if z == tree.node(p).right {
				tree.observeInsert(InsertInnerChild)
				z = p
				tree.rotateLeft(z)
				p = tree.node(z).parent
			}

			tree.observeInsert(InsertOuterChild)
			tree.node(p).color = Black
			tree.node(g).color = Red
			tree.rotateRight(g)
		} else {
			uncle := tree.node(g).left
			if tree.node(uncle).color == Red {
				tree.observeInsert(InsertUncleRed)
				tree.node(p).color = Black
				tree.node(uncle).color = Black
				tree.node(g).color = Red
				z = g
				continue
			}

			if z == tree.node(p).left {
				tree.observeInsert(InsertInnerChild)
				z = p
				tree.rotateRight(z)
				p = tree.node(z).parent
			}

			tree.observeInsert(InsertOuterChild)
			tree.node(p).color = Black
			tree.node(g).color = Red
			tree.rotateLeft(g)
		}
	}

	// ensure that root is black
	tree.node(tree.root).color = Black
}
