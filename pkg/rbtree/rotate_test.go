package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree_rotateLeft(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 20, 10, 30, 25, 35)
	before := tree.Keys()
	root := tree.root
	right := tree.node(root).right
	inner := tree.node(right).left

	tree.rotateLeft(root)

	assert.Equal(t, right, tree.root, "the right child should become the root")
	assert.Equal(t, nilIndex, tree.node(right).parent)
	assert.Equal(t, root, tree.node(right).left)
	assert.Equal(t, inner, tree.node(root).right, "the inner grandchild moves under the old root")
	assert.Equal(t, root, tree.node(inner).parent)
	assert.Equal(t, before, tree.Keys(), "rotation must keep the in-order sequence")

	tree.rotateRight(tree.root)
	assert.Equal(t, root, tree.root)
	assert.Equal(t, before, tree.Keys())
	assert.NoError(t, tree.Verify())
}

func TestTree_rotateKeepsColors(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 20, 10, 30, 5, 15)
	colors := map[int]Color{}
	tree.inorder(func(i uint32) bool {
		colors[tree.node(i).key] = tree.node(i).color
		return true
	})

	left := tree.node(tree.root).left
	tree.rotateRight(left)

	tree.inorder(func(i uint32) bool {
		assert.Equal(t, colors[tree.node(i).key], tree.node(i).color)
		return true
	})
	assert.Equal(t, []int{5, 10, 15, 20, 30}, tree.Keys())
}

func TestTree_rotateSentinelChildPanics(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 1)

	assert.Panics(t, func() {
		tree.rotateLeft(tree.root)
	})
	assert.Panics(t, func() {
		tree.rotateRight(tree.root)
	})
}
