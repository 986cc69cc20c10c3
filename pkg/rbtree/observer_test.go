package rbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/rbtree/mocks"
)

func TestObserver_InsertOuterChild(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	observer := mocks.NewMockObserver(mockCtrl)
	gomock.InOrder(
		observer.EXPECT().OnInsertFixup(rbtree.InsertOuterChild),
		observer.EXPECT().OnRotate(rbtree.Left),
	)

	tree := rbtree.New[int](rbtree.WithObserver(observer))
	for _, k := range []int{10, 20, 30} {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}

	ref, ok := tree.Find(20)
	require.True(t, ok)
	root, err := tree.Key(ref)
	require.NoError(t, err)
	assert.Equal(t, 20, root)
	assert.Equal(t, []int{10, 20, 30}, tree.Keys())
}

func TestObserver_InsertInnerChild(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	observer := mocks.NewMockObserver(mockCtrl)
	gomock.InOrder(
		observer.EXPECT().OnInsertFixup(rbtree.InsertInnerChild),
		observer.EXPECT().OnRotate(rbtree.Right),
		observer.EXPECT().OnInsertFixup(rbtree.InsertOuterChild),
		observer.EXPECT().OnRotate(rbtree.Left),
	)

	tree := rbtree.New[int](rbtree.WithObserver(observer))
	for _, k := range []int{10, 30, 20} {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	assert.NoError(t, tree.Verify())
}

func TestObserver_InsertUncleRed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	observer := mocks.NewMockObserver(mockCtrl)
	observer.EXPECT().OnInsertFixup(rbtree.InsertUncleRed).Times(1)

	tree := rbtree.New[int](rbtree.WithObserver(observer))
	for _, k := range []int{20, 10, 30, 5} {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	assert.NoError(t, tree.Verify())
}

func TestObserver_DeleteFixup(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	observer := mocks.NewMockObserver(mockCtrl)
	observer.EXPECT().OnInsertFixup(gomock.Any()).AnyTimes()
	observer.EXPECT().OnRotate(gomock.Any()).AnyTimes()

	tree := rbtree.New[int](rbtree.WithObserver(observer))
	// 20(B) -> 10(B), 30(B) -> 25(R), 35(R)
	for _, k := range []int{20, 10, 30, 25, 35} {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}

	// erasing the black leaf 10 leaves a far red nephew
	observer.EXPECT().OnDeleteFixup(rbtree.DeleteFarChildRed).Times(1)
	require.True(t, tree.Delete(10))

	assert.Equal(t, []int{20, 25, 30, 35}, tree.Keys())
	assert.NoError(t, tree.Verify())
}
