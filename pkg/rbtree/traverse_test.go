package rbtree

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_ToArray(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 8, 3, 10, 1, 6, 14, 4, 7, 13)
	sorted := []int{1, 3, 4, 6, 7, 8, 10, 13, 14}

	tests := []struct {
		name     string
		capacity int
		want     []int
	}{
		{name: "zero capacity", capacity: 0, want: []int{}},
		{name: "truncated", capacity: 4, want: sorted[:4]},
		{name: "exact", capacity: len(sorted), want: sorted},
		{name: "larger buffer", capacity: 20, want: sorted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]int, tt.capacity)
			n := tree.ToArray(buf)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.want, buf[:n])
		})
	}
}

func TestTree_ToArrayTruncationIsDistinguishable(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 1, 2, 3)

	buf := make([]int, 3)
	n := tree.ToArray(buf)
	assert.Equal(t, 3, n)
	assert.False(t, n < tree.Len(), "a full export is not truncated")

	mustInsert(t, tree, 4)
	n = tree.ToArray(buf)
	assert.Equal(t, len(buf), n)
	assert.True(t, n < tree.Len(), "export should be reported as truncated")
}

func TestTree_ToArrayRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	tree := New[int]()
	var keys []int
	for i := 0; i < 2_000; i++ {
		k := rnd.Intn(500)
		keys = append(keys, k)
		mustInsert(t, tree, k)
	}
	sort.Ints(keys)

	all := tree.Keys()
	assert.True(t, sort.IntsAreSorted(all))
	assert.Equal(t, keys, all)

	for _, k := range []int{1, 17, 999} {
		buf := make([]int, k)
		n := tree.ToArray(buf)
		require.Equal(t, k, n)
		assert.Equal(t, keys[:k], buf)
	}
}

func TestTree_AscendDescend(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 5, 2, 8, 1, 9, 3)

	var asc []int
	tree.Ascend(func(k int) bool {
		asc = append(asc, k)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, asc)

	var desc []int
	tree.Descend(func(k int) bool {
		desc = append(desc, k)
		return len(desc) < 3
	})
	assert.Equal(t, []int{9, 8, 5}, desc)
}

func TestTree_SuccessorPredecessor(t *testing.T) {
	tree := New[int]()
	mustInsert(t, tree, 20, 10, 30, 5, 15, 25, 35)

	ref, ok := tree.Min()
	require.True(t, ok)

	var walked []int
	for ok {
		walked = append(walked, keyOf(t, tree, ref))
		ref, ok = tree.Successor(ref)
	}
	assert.Equal(t, []int{5, 10, 15, 20, 25, 30, 35}, walked)

	ref, _ = tree.Max()
	walked = walked[:0]
	for ok = true; ok; ref, ok = tree.Predecessor(ref) {
		walked = append(walked, keyOf(t, tree, ref))
	}
	assert.Equal(t, []int{35, 30, 25, 20, 15, 10, 5}, walked)
}

func TestTree_Height(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, 0, tree.Height())

	const n = 1 << 12
	for i := 0; i < n; i++ {
		mustInsert(t, tree, i)
	}

	// a red-black tree is at most 2*log2(n+1) high
	bound := int(2 * math.Log2(n+1))
	assert.LessOrEqual(t, tree.Height(), bound)
	assert.Greater(t, tree.Height(), 11)
}
