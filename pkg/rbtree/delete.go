package rbtree

// Erase removes the referenced node from the tree. A reference that is not
// a live node of this tree is rejected with ErrInvalidNode and the tree is
// left untouched.
func (tree *Tree[K]) Erase(ref NodeRef) error {
	p, err := tree.resolve(ref)
	if err != nil {
		log.WithError(err).Errorf("can not erase %s", ref)
		return err
	}

	tree.erase(p)
	return nil
}

// Delete erases one node holding key. It returns false if there is none.
func (tree *Tree[K]) Delete(key K) bool {
	if tree.destroyed {
		return false
	}

	p := tree.search(key)
	if p == nilIndex {
		return false
	}

	tree.erase(p)
	return true
}

func (tree *Tree[K]) erase(p uint32) {
	pn := tree.node(p)

	// y is the node that is physically taken out of its position,
	// x is the node that moves into y's position.
	var y = p
	var x uint32
	var removedColor = pn.color

	if pn.left == nilIndex {
		x = pn.right
		tree.transplant(p, pn.right)
	} else if pn.right == nilIndex {
		x = pn.left
		tree.transplant(p, pn.left)
	} else {
		y = tree.leftmostOf(pn.right)
		yn := tree.node(y)
		removedColor = yn.color
		x = yn.right

		if yn.parent == p {
			tree.node(x).parent = y
		} else {
			tree.transplant(y, yn.right)
			yn.right = pn.right
			tree.node(yn.right).parent = y
		}

		tree.transplant(p, y)
		yn.left = pn.left
		tree.node(yn.left).parent = y
		yn.color = pn.color
	}

	if removedColor == Black {
		tree.deleteFixup(x)
	}

	// the sentinel's parent link is only meaningful during the fix-up
	tree.node(nilIndex).parent = nilIndex

	tree.arena.release(p)
	tree.stats.Free++
	tree.stats.Erases++
	tree.size--
}

func (tree *Tree[K]) deleteFixup(current uint32) {
	for current != tree.root && tree.node(current).color == Black {
		parent := tree.node(current).parent

		if current == tree.node(parent).left {
			sibling := tree.node(parent).right
			if tree.node(sibling).color == Red {
				tree.observeDelete(DeleteSiblingRed)
				tree.node(sibling).color = Black
				tree.node(parent).color = Red
				tree.rotateLeft(parent)
				sibling = tree.node(parent).right
			}

			sn := tree.node(sibling)
			// if both are black nodes
			if tree.node(sn.left).color == Black && tree.node(sn.right).color == Black {
				tree.observeDelete(DeleteSiblingBlackChildren)
				sn.color = Red
				current = parent
				continue
			}

			// only one of the child is black
			if tree.node(sn.right).color == Black {
				tree.observeDelete(DeleteNearChildRed)
				tree.node(sn.left).color = Black
				sn.color = Red
				tree.rotateRight(sibling)
				sibling = tree.node(parent).right
				sn = tree.node(sibling)
			}

			tree.observeDelete(DeleteFarChildRed)
			sn.color = tree.node(parent).color
			tree.node(parent).color = Black
			tree.node(sn.right).color = Black
			tree.rotateLeft(parent)
			current = tree.root
		} else { // if current is right child
			sibling := tree.node(parent).left
			if tree.node(sibling).color == Red {
				tree.observeDelete(DeleteSiblingRed)
				tree.node(sibling).color = Black
				tree.node(parent).color = Red
				tree.rotateRight(parent)
				sibling = tree.node(parent).left
			}

			sn := tree.node(sibling)
			if tree.node(sn.left).color == Black && tree.node(sn.right).color == Black {
				tree.observeDelete(DeleteSiblingBlackChildren)
				sn.color = Red
				current = parent
				continue
			}

			// the left child of sibling is black, and right child is red
			if tree.node(sn.left).color == Black {
				tree.observeDelete(DeleteNearChildRed)
				tree.node(sn.right).color = Black
				sn.color = Red
				tree.rotateLeft(sibling)
				sibling = tree.node(parent).left
				sn = tree.node(sibling)
			}

			tree.observeDelete(DeleteFarChildRed)
			sn.color = tree.node(parent).color
			tree.node(parent).color = Black
			tree.node(sn.left).color = Black
			tree.rotateRight(parent)
			current = tree.root
		}
	}

	tree.node(current).color = Black
}
