package rbtree

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks . Observer

// Observer receives structural events from a Tree. The callbacks run
// synchronously inside the mutating call and must not touch the tree.
type Observer interface {
	OnRotate(dir Direction)
	OnInsertFixup(c InsertCase)
	OnDeleteFixup(c DeleteCase)
}

type RBTreeStats struct {
	// Alloc and Free count node slots, the sentinel included.
	Alloc int64
	Free  int64

	Rotations int64
	Inserts   int64
	Erases    int64
}

// InUse is the number of node slots allocated and not yet released.
func (s RBTreeStats) InUse() int64 {
	return s.Alloc - s.Free
}

func (tree *Tree[K]) observeRotate(dir Direction) {
	tree.stats.Rotations++
	if tree.observer != nil {
		tree.observer.OnRotate(dir)
	}
}

func (tree *Tree[K]) observeInsert(c InsertCase) {
	if tree.observer != nil {
		tree.observer.OnInsertFixup(c)
	}
}

func (tree *Tree[K]) observeDelete(c DeleteCase) {
	if tree.observer != nil {
		tree.observer.OnDeleteFixup(c)
	}
}
