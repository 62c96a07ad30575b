package node

import (
	"fmt"
	"reflect"
)

// Node is the base interface and common ground for all processing.
// Every operation, translator and resolver in this module consumes and
// produces values of this interface.
//
// The mutator methods return Node rather than the receiver's concrete
// kind; use As or To to regain a typed view after an attribute update.
type Node interface {
	// Kind reports which structure this node represents.
	Kind() Kind

	// Mutable reports whether update methods change this instance in
	// place (true) or build a replacement (false).
	Mutable() bool

	// Attributes returns the attribute container of this node. It is
	// never nil; nodes without attribute support return Ignorant().
	Attributes() KeyValueNode

	// WithAttributes replaces the whole attribute container.
	WithAttributes(attrs KeyValueNode) Node

	// WithAttribute sets a single attribute.
	WithAttribute(key, value Node) Node

	// WithoutAttribute removes a single attribute. Removing an absent
	// key is a no-op.
	WithoutAttribute(key Node) Node

	// WithoutAttributes removes every attribute.
	WithoutAttributes() Node
}

// Is reports whether n has the given kind.
func Is(n Node, k Kind) bool {
	return n != nil && n.Kind() == k
}

// IsNull reports whether n is a null node.
func IsNull(n Node) bool {
	return Is(n, NullKind)
}

// As changes the view of n to a capability interface such as FlagNode
// or IndexedNode. It never fails: the second result reports whether n
// supports T.
func As[T Node](n Node) (T, bool) {
	t, ok := n.(T)
	return t, ok
}

// To changes the view of n to a capability interface, returning
// ErrTypeMismatch when n does not support T. Use As when a failed
// conversion is an expected outcome rather than a defect.
func To[T Node](n Node) (T, error) {
	var zero T
	if n == nil {
		return zero, fmt.Errorf("cannot view nil as %s: %w", reflect.TypeOf((*T)(nil)).Elem(), ErrTypeMismatch)
	}
	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("cannot view %s node as %s: %w", n.Kind(), reflect.TypeOf((*T)(nil)).Elem(), ErrTypeMismatch)
	}
	return t, nil
}

// Attribute returns the attribute value for key, or nil when the node
// has no such attribute.
func Attribute(n, key Node) Node {
	return n.Attributes().RequestValue(key)
}

// HasAttribute reports whether n carries an attribute under key.
func HasAttribute(n, key Node) bool {
	return Attribute(n, key) != nil
}
