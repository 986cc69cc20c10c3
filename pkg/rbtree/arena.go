package rbtree

import (
	"cmp"
	"math"

	"github.com/pkg/errors"
)

// maxSlots is the number of addressable slots, the sentinel included.
const maxSlots = math.MaxUint32

// arena stores the nodes of one tree. Slot 0 is the sentinel and is never
// handed out or released by alloc/release.
type arena[K cmp.Ordered] struct {
	nodes []node[K]
	free  []uint32

	// maxNodes caps the number of live nodes, 0 means no cap.
	maxNodes int
	live     int
}

func newArena[K cmp.Ordered](initialCapacity, maxNodes int) *arena[K] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}

	a := &arena[K]{
		nodes:    make([]node[K], 1, initialCapacity+1),
		maxNodes: maxNodes,
	}

	a.nodes[nilIndex].color = Black
	return a
}

func (a *arena[K]) alloc() (uint32, error) {
	if a.maxNodes > 0 && a.live >= a.maxNodes {
		return nilIndex, errors.Wrapf(ErrCapacityExhausted, "%d nodes in use, max %d", a.live, a.maxNodes)
	}

	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[i].live = true
		a.live++
		return i, nil
	}

	if uint64(len(a.nodes)) >= maxSlots {
		return nilIndex, errors.Wrapf(ErrCapacityExhausted, "index space of %d slots used up", uint64(maxSlots))
	}

	oldCap := cap(a.nodes)
	a.nodes = append(a.nodes, node[K]{live: true})
	if c := cap(a.nodes); c != oldCap {
		log.Debugf("node arena grown from %d to %d slots", oldCap, c)
	}

	a.live++
	return uint32(len(a.nodes) - 1), nil
}

func (a *arena[K]) release(i uint32) {
	if i == nilIndex {
		log.Panicf("sentinel slot can not be released")
	}

	n := &a.nodes[i]
	if !n.live {
		log.Panicf("slot #%d is released twice", i)
	}

	*n = node[K]{gen: n.gen + 1}
	a.free = append(a.free, i)
	a.live--
}
