// Package node defines an in-memory document model shared by tree
// manipulation, directive resolution and translation code.
//
// # Overview
//
// The model is the common ground of the mainstream document formats:
// everything a JSON, YAML or XML document can express maps onto one of
// six kinds (null, flag, numeric, text, group, key-value), and nodes
// outside that set are carried as Special. Values are trees of Node
// implementations; there is no text syntax here and no byte-level
// representation, only the structure itself.
//
// # Mutability
//
// Every kind ships in two flavors behind the same interface: a mutable
// one that applies updates in place and returns its receiver, and an
// immutable one that leaves the receiver alone and returns a fresh
// instance. Code written against the interfaces works with either;
// only instance identity tells them apart. Mutable() reports which
// flavor a node is. Immutable nodes are safe to share between
// goroutines without synchronization; mutable nodes belong to a single
// owner.
//
// # Attributes
//
// Each node carries a key-value side channel for format-level
// attributes (XML is the usual source). Attributes hang off the node,
// not its value: two nodes with equal values and different attributes
// are different. Attribute containers of attribute nodes are the
// Ignorant() sentinel, which absorbs every read and write. Attribute
// graphs must not contain cycles; that is the caller's obligation and
// is not checked.
//
// # Casting
//
// As[T] is the safe view change: it reports whether a node supports a
// capability (FlagNode, IndexedNode, ...) and never fails. To[T] is
// the unsafe sibling: it returns ErrTypeMismatch when the node does
// not support the capability. Every get-or-fail accessor in this
// package has a non-failing sibling next to it.
package node
