package rbtree

// Color is the RB Tree color
type Color bool

const (
	Red   = Color(false)
	Black = Color(true)
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Direction is the direction of a rotation.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// InsertCase identifies the branch taken by the insert fix-up loop.
type InsertCase uint8

const (
	// InsertUncleRed recolors parent, uncle and grandparent and moves up.
	InsertUncleRed InsertCase = iota + 1
	// InsertInnerChild rotates the parent to turn a zig-zag into a line.
	InsertInnerChild
	// InsertOuterChild recolors and rotates the grandparent, ending the loop.
	InsertOuterChild
)

func (c InsertCase) String() string {
	switch c {
	case InsertUncleRed:
		return "uncle_red"
	case InsertInnerChild:
		return "inner_child"
	case InsertOuterChild:
		return "outer_child"
	}
	return "unknown"
}

// DeleteCase identifies the branch taken by the delete fix-up loop.
type DeleteCase uint8

const (
	// DeleteSiblingRed turns a red sibling into a black one.
	DeleteSiblingRed DeleteCase = iota + 1
	// DeleteSiblingBlackChildren recolors the sibling and moves up.
	DeleteSiblingBlackChildren
	// DeleteNearChildRed rotates the sibling so the far child becomes red.
	DeleteNearChildRed
	// DeleteFarChildRed rotates the parent and terminates the loop.
	DeleteFarChildRed
)

func (c DeleteCase) String() string {
	switch c {
	case DeleteSiblingRed:
		return "sibling_red"
	case DeleteSiblingBlackChildren:
		return "sibling_black_children"
	case DeleteNearChildRed:
		return "near_child_red"
	case DeleteFarChildRed:
		return "far_child_red"
	}
	return "unknown"
}
