package node

// ContainerNode is a node that encloses other nodes rather than a
// value.
type ContainerNode interface {
	Node

	// Empty reports whether the container holds nothing.
	Empty() bool
}

// CountedNode is a container that knows how many children it holds.
type CountedNode interface {
	ContainerNode
	Count() int64
}
