package rbtree

import (
	"cmp"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "rbtree")

var treeSeq atomic.Uint64

type Tree[K cmp.Ordered] struct {
	id       uint64
	root     uint32
	size     int
	arena    *arena[K]
	observer Observer

	stats     RBTreeStats
	destroyed bool
}

// New creates an empty tree.
func New[K cmp.Ordered](options ...Option) *Tree[K] {
	var config Config
	for _, option := range options {
		option(&config)
	}

	tree := &Tree[K]{
		id:       treeSeq.Add(1),
		root:     nilIndex,
		arena:    newArena[K](config.InitialCapacity, config.MaxNodes),
		observer: config.Observer,
	}

	// the sentinel
	tree.stats.Alloc = 1
	return tree
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.size
}

func (tree *Tree[K]) Stats() RBTreeStats {
	return tree.stats
}

// Destroy releases every node of the tree. The tree must not be used
// afterwards: mutations return ErrDestroyed and queries report absence.
func (tree *Tree[K]) Destroy() {
	if tree.destroyed {
		return
	}

	released := 0
	tree.postorder(func(i uint32) bool {
		tree.arena.release(i)
		tree.stats.Free++
		released++
		return true
	})

	// the sentinel goes last
	tree.stats.Free++

	log.Debugf("tree #%d destroyed, %d nodes released", tree.id, released)

	tree.arena = nil
	tree.root = nilIndex
	tree.size = 0
	tree.destroyed = true
}

// Key returns the key held by the referenced node.
func (tree *Tree[K]) Key(ref NodeRef) (K, error) {
	i, err := tree.resolve(ref)
	if err != nil {
		var zero K
		return zero, err
	}

	return tree.node(i).key, nil
}

func (tree *Tree[K]) node(i uint32) *node[K] {
	return &tree.arena.nodes[i]
}

func (tree *Tree[K]) ref(i uint32) NodeRef {
	return NodeRef{tree: tree.id, index: i, gen: tree.arena.nodes[i].gen}
}

// resolve maps a handle back to its arena slot.
func (tree *Tree[K]) resolve(ref NodeRef) (uint32, error) {
	if tree.destroyed {
		return nilIndex, ErrDestroyed
	}

	if ref.tree != tree.id {
		return nilIndex, errors.Wrapf(ErrInvalidNode, "%s does not belong to tree #%d", ref, tree.id)
	}

	if ref.index == nilIndex || int(ref.index) >= len(tree.arena.nodes) {
		return nilIndex, errors.Wrapf(ErrInvalidNode, "%s is out of range", ref)
	}

	n := tree.node(ref.index)
	if !n.live || n.gen != ref.gen {
		return nilIndex, errors.Wrapf(ErrInvalidNode, "%s was already erased", ref)
	}

	return ref.index, nil
}
