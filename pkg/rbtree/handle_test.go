package rbtree

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_EraseInvalidHandle(t *testing.T) {
	tree := New[int]()
	refs := mustInsert(t, tree, 1, 2, 3)

	other := New[int]()
	foreign := mustInsert(t, other, 2)[0]

	tests := []struct {
		name string
		ref  NodeRef
	}{
		{name: "zero value", ref: NodeRef{}},
		{name: "foreign tree", ref: foreign},
		{name: "sentinel", ref: NodeRef{tree: tree.id, index: nilIndex}},
		{name: "out of range", ref: NodeRef{tree: tree.id, index: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.Erase(tt.ref)
			assert.True(t, errors.Is(err, ErrInvalidNode), "got %v", err)
			assert.Equal(t, []int{1, 2, 3}, tree.Keys(), "tree must be left untouched")
		})
	}

	assert.NoError(t, tree.Verify())
	assert.Equal(t, 2, keyOf(t, tree, refs[1]))
}

func TestTree_EraseTwice(t *testing.T) {
	tree := New[int]()
	refs := mustInsert(t, tree, 1, 2, 3)

	require.NoError(t, tree.Erase(refs[1]))
	err := tree.Erase(refs[1])
	assert.True(t, errors.Is(err, ErrInvalidNode))

	// the released slot is reused, the stale handle must still be rejected
	fresh := mustInsert(t, tree, 9)[0]
	assert.Equal(t, refs[1].index, fresh.index)
	assert.NotEqual(t, refs[1].gen, fresh.gen)

	err = tree.Erase(refs[1])
	assert.True(t, errors.Is(err, ErrInvalidNode))
	_, err = tree.Key(refs[1])
	assert.True(t, errors.Is(err, ErrInvalidNode))
	assert.Equal(t, []int{1, 3, 9}, tree.Keys())
	assert.NoError(t, tree.Verify())
}

func TestTree_CapacityExhausted(t *testing.T) {
	tree := New[int](WithMaxNodes(3), WithInitialCapacity(3))
	mustInsert(t, tree, 1, 2, 3)

	_, err := tree.Insert(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExhausted))
	assert.Equal(t, []int{1, 2, 3}, tree.Keys())
	assert.NoError(t, tree.Verify())

	// room is given back by erase
	require.True(t, tree.Delete(2))
	mustInsert(t, tree, 4)
	assert.Equal(t, []int{1, 3, 4}, tree.Keys())
	assert.NoError(t, tree.Verify())
}

func TestTree_Destroy(t *testing.T) {
	tree := New[int]()
	refs := mustInsert(t, tree, 5, 3, 8, 1, 4, 7, 9, 2, 6)
	require.True(t, tree.Delete(4))

	tree.Destroy()

	stats := tree.Stats()
	assert.Equal(t, stats.Alloc, stats.Free, "every node and the sentinel should be released exactly once")
	assert.Equal(t, int64(0), stats.InUse())

	assert.Equal(t, 0, tree.Len())
	_, ok := tree.Find(5)
	assert.False(t, ok)
	_, ok = tree.Min()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.ToArray(make([]int, 4)))

	_, err := tree.Insert(10)
	assert.True(t, errors.Is(err, ErrDestroyed))
	assert.True(t, errors.Is(tree.Erase(refs[0]), ErrDestroyed))
	assert.True(t, errors.Is(tree.Verify(), ErrDestroyed))
	assert.False(t, tree.Delete(5))

	// a second destroy is a no-op
	tree.Destroy()
	assert.Equal(t, stats, tree.Stats())
}

func TestTree_DestroyEmpty(t *testing.T) {
	tree := New[string]()
	tree.Destroy()
	assert.Equal(t, RBTreeStats{Alloc: 1, Free: 1}, tree.Stats())
}
