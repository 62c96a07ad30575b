// Package treeop is the manipulation engine: a small algebra of
// operations and conditions applied to nodes through an immutable
// evaluation context, and a locator that walks paths through trees.
//
// Operations are pure: Apply takes a Context and returns the
// replacement node, never an error. Anything that cannot act leaves
// the context's node as it was. Conditions are pure predicates over
// the same context. Both compose: Switch and SequenceOf build bigger
// operations out of smaller ones, And and Or build bigger conditions.
package treeop
