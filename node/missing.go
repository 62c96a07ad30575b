package node

import "fmt"

// Missing returns the sentinel that stands for a node that is not
// there. Operations bound to a non-nil contract return it to signal
// removal or absence; see treeop.Delete for the usual producer.
//
// The sentinel is ephemeral: it must not be stored into a document.
// Every mutating call panics with an error wrapping ErrUnsupported.
// Reads are safe and report an empty node of SpecialKind.
func Missing() Node {
	return missingSentinel
}

// IsMissing reports whether n is the Missing sentinel.
func IsMissing(n Node) bool {
	_, ok := n.(*missingNode)
	return ok
}

var missingSentinel = &missingNode{}

type missingNode struct{}

func (n *missingNode) Kind() Kind               { return SpecialKind }
func (n *missingNode) Mutable() bool            { return false }
func (n *missingNode) Attributes() KeyValueNode { return ignorantKeyValue }

func (n *missingNode) WithAttributes(attrs KeyValueNode) Node {
	panic(errMissingMutation())
}

func (n *missingNode) WithAttribute(key, value Node) Node {
	panic(errMissingMutation())
}

func (n *missingNode) WithoutAttribute(key Node) Node {
	panic(errMissingMutation())
}

func (n *missingNode) WithoutAttributes() Node {
	panic(errMissingMutation())
}

func errMissingMutation() error {
	return fmt.Errorf("missing node is ephemeral and does not support node operations: %w", ErrUnsupported)
}
