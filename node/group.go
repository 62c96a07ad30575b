package node

// GroupNode represents a collection of values. The base interface
// makes no promise about ordering: two Children calls on a group that
// is not Ordered may return children in different order. Use As to
// discover the Ordered, Indexed and Sequence capabilities.
type GroupNode interface {
	ContainerNode

	// Children returns a snapshot of the group's members. Mutating
	// the returned slice does not affect the group.
	Children() []Node

	// WithContent replaces the group's members.
	WithContent(children ...Node) GroupNode

	// WithElement adds a member.
	WithElement(child Node) GroupNode

	// WithElements adds several members.
	WithElements(children ...Node) GroupNode

	// WithoutElement removes every member equal to child, under
	// Equal. Removing an absent member is a no-op.
	WithoutElement(child Node) GroupNode

	// WithoutElements removes every member equal to any of children.
	WithoutElements(children ...Node) GroupNode

	// WithoutContent removes every member.
	WithoutContent() GroupNode

	// WithSelectedElements keeps only the members keep accepts.
	WithSelectedElements(keep func(Node) bool) GroupNode

	// WithoutFilteredElements removes the members drop accepts.
	WithoutFilteredElements(drop func(Node) bool) GroupNode

	// WithReplacements rewrites every member match accepts through
	// transform.
	WithReplacements(match func(Node) bool, transform func(Node) Node) GroupNode
}

// OrderedNode is a group whose Children order is stable and
// meaningful.
type OrderedNode interface {
	GroupNode

	// Sorted rearranges the members by cmp, which follows the usual
	// contract: negative when a sorts before b.
	Sorted(cmp func(a, b Node) int) OrderedNode
}

// IndexedNode is a group with random access. Positions only mean
// anything over a stable order, so every indexed group is also
// ordered. Indexes live in [0, Count); every accessor taking an index
// fails with ErrOutOfBounds outside that range.
type IndexedNode interface {
	OrderedNode
	CountedNode

	// Get returns the member at index.
	Get(index int64) (Node, error)

	// Set replaces the member at index.
	Set(index int64, value Node) (IndexedNode, error)

	// Drop removes the member at index, shifting later members down.
	Drop(index int64) (IndexedNode, error)

	// HasIndex reports whether index is within bounds. It is the
	// non-failing sibling of Get.
	HasIndex(index int64) bool
}

// SequenceNode is the everyday list.
type SequenceNode interface {
	IndexedNode
}
