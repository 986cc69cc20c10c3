package rbtree

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func invariantsOf(err error) []string {
	var names []string
	for _, e := range multierr.Errors(err) {
		var ie *InvariantError
		if errors.As(e, &ie) {
			names = append(names, ie.Invariant)
		}
	}
	return names
}

func TestTree_VerifyDetectsViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree[int])
		want    string
	}{
		{
			name: "red root",
			corrupt: func(tree *Tree[int]) {
				tree.node(tree.root).color = Red
			},
			want: InvariantRootBlack,
		},
		{
			name: "red sentinel",
			corrupt: func(tree *Tree[int]) {
				tree.node(nilIndex).color = Red
			},
			want: InvariantSentinel,
		},
		{
			name: "red child of red node",
			corrupt: func(tree *Tree[int]) {
				// 10 is red, paint its left child red too
				left := tree.node(tree.root).left
				tree.node(left).color = Red
				i := tree.node(left).left
				tree.node(i).color = Red
			},
			want: InvariantRedRed,
		},
		{
			name: "black-height",
			corrupt: func(tree *Tree[int]) {
				tree.node(tree.node(tree.root).right).color = Red
			},
			want: InvariantBlackHeight,
		},
		{
			name: "order",
			corrupt: func(tree *Tree[int]) {
				tree.node(tree.node(tree.root).left).key = 1000
			},
			want: InvariantOrder,
		},
		{
			name: "parent link",
			corrupt: func(tree *Tree[int]) {
				tree.node(tree.node(tree.root).right).parent = nilIndex
			},
			want: InvariantParentLink,
		},
		{
			name: "size",
			corrupt: func(tree *Tree[int]) {
				tree.size++
			},
			want: InvariantSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			mustInsert(t, tree, 20, 10, 30, 5, 15, 25, 35, 1)
			require.NoError(t, tree.Verify())

			tt.corrupt(tree)

			err := tree.Verify()
			require.Error(t, err)
			assert.Contains(t, invariantsOf(err), tt.want)
		})
	}
}
