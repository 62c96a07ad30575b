package node

import (
	"fmt"
	"slices"
)

// Sequence returns an immutable sequence holding the given children.
func Sequence(children ...Node) SequenceNode {
	if len(children) == 0 {
		return emptySequence
	}
	return &immutableSequence{children: slices.Clone(children), attrs: emptyKeyValue}
}

// SequenceWithAttrs returns an immutable sequence with the given
// attributes.
func SequenceWithAttrs(attrs KeyValueNode, children ...Node) SequenceNode {
	return &immutableSequence{children: slices.Clone(children), attrs: attrs}
}

// MutableSequence returns a mutable sequence holding the given
// children.
func MutableSequence(children ...Node) SequenceNode {
	return &mutableSequence{children: slices.Clone(children), attrs: MutableKeyValue()}
}

// MutableSequenceWithAttrs returns a mutable sequence with the given
// attributes.
func MutableSequenceWithAttrs(attrs KeyValueNode, children ...Node) SequenceNode {
	return &mutableSequence{children: slices.Clone(children), attrs: attrs}
}

var emptySequence = &immutableSequence{attrs: emptyKeyValue}

func checkIndex(index, count int64) error {
	if index < 0 || index >= count {
		return fmt.Errorf("index %d outside [0, %d): %w", index, count, ErrOutOfBounds)
	}
	return nil
}

type mutableSequence struct {
	children []Node
	attrs    KeyValueNode
}

func (n *mutableSequence) Kind() Kind               { return GroupKind }
func (n *mutableSequence) Mutable() bool            { return true }
func (n *mutableSequence) Attributes() KeyValueNode { return n.attrs }
func (n *mutableSequence) Empty() bool              { return len(n.children) == 0 }
func (n *mutableSequence) Count() int64             { return int64(len(n.children)) }
func (n *mutableSequence) Children() []Node         { return slices.Clone(n.children) }

func (n *mutableSequence) Get(index int64) (Node, error) {
	if err := checkIndex(index, n.Count()); err != nil {
		return nil, err
	}
	return n.children[index], nil
}

func (n *mutableSequence) HasIndex(index int64) bool {
	return index >= 0 && index < n.Count()
}

func (n *mutableSequence) Set(index int64, value Node) (IndexedNode, error) {
	if err := checkIndex(index, n.Count()); err != nil {
		return nil, err
	}
	n.children[index] = value
	return n, nil
}

func (n *mutableSequence) Drop(index int64) (IndexedNode, error) {
	if err := checkIndex(index, n.Count()); err != nil {
		return nil, err
	}
	n.children = slices.Delete(n.children, int(index), int(index)+1)
	return n, nil
}

func (n *mutableSequence) Sorted(cmp func(a, b Node) int) OrderedNode {
	slices.SortStableFunc(n.children, cmp)
	return n
}

func (n *mutableSequence) WithContent(children ...Node) GroupNode {
	n.children = slices.Clone(children)
	return n
}

func (n *mutableSequence) WithElement(child Node) GroupNode {
	n.children = append(n.children, child)
	return n
}

func (n *mutableSequence) WithElements(children ...Node) GroupNode {
	n.children = append(n.children, children...)
	return n
}

func (n *mutableSequence) WithoutElement(child Node) GroupNode {
	n.children = slices.DeleteFunc(n.children, func(c Node) bool {
		return Equal(c, child)
	})
	return n
}

func (n *mutableSequence) WithoutElements(children ...Node) GroupNode {
	n.children = slices.DeleteFunc(n.children, func(c Node) bool {
		return slices.ContainsFunc(children, func(x Node) bool { return Equal(c, x) })
	})
	return n
}

func (n *mutableSequence) WithoutContent() GroupNode {
	n.children = nil
	return n
}

func (n *mutableSequence) WithSelectedElements(keep func(Node) bool) GroupNode {
	n.children = slices.DeleteFunc(n.children, func(c Node) bool { return !keep(c) })
	return n
}

func (n *mutableSequence) WithoutFilteredElements(drop func(Node) bool) GroupNode {
	n.children = slices.DeleteFunc(n.children, drop)
	return n
}

func (n *mutableSequence) WithReplacements(match func(Node) bool, transform func(Node) Node) GroupNode {
	for i, c := range n.children {
		if match(c) {
			n.children[i] = transform(c)
		}
	}
	return n
}

func (n *mutableSequence) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableSequence) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableSequence) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableSequence) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}

type immutableSequence struct {
	children []Node
	attrs    KeyValueNode
}

func (n *immutableSequence) with(children []Node) *immutableSequence {
	return &immutableSequence{children: children, attrs: n.attrs}
}

func (n *immutableSequence) Kind() Kind               { return GroupKind }
func (n *immutableSequence) Mutable() bool            { return false }
func (n *immutableSequence) Attributes() KeyValueNode { return n.attrs }
func (n *immutableSequence) Empty() bool              { return len(n.children) == 0 }
func (n *immutableSequence) Count() int64             { return int64(len(n.children)) }
func (n *immutableSequence) Children() []Node         { return slices.Clone(n.children) }

func (n *immutableSequence) Get(index int64) (Node, error) {
	if err := checkIndex(index, n.Count()); err != nil {
		return nil, err
	}
	return n.children[index], nil
}

func (n *immutableSequence) HasIndex(index int64) bool {
	return index >= 0 && index < n.Count()
}

func (n *immutableSequence) Set(index int64, value Node) (IndexedNode, error) {
	if err := checkIndex(index, n.Count()); err != nil {
		return nil, err
	}
	children := slices.Clone(n.children)
	children[index] = value
	return n.with(children), nil
}

func (n *immutableSequence) Drop(index int64) (IndexedNode, error) {
	if err := checkIndex(index, n.Count()); err != nil {
		return nil, err
	}
	children := slices.Clone(n.children)
	return n.with(slices.Delete(children, int(index), int(index)+1)), nil
}

func (n *immutableSequence) Sorted(cmp func(a, b Node) int) OrderedNode {
	children := slices.Clone(n.children)
	slices.SortStableFunc(children, cmp)
	return n.with(children)
}

func (n *immutableSequence) WithContent(children ...Node) GroupNode {
	return n.with(slices.Clone(children))
}

func (n *immutableSequence) WithElement(child Node) GroupNode {
	children := make([]Node, 0, len(n.children)+1)
	children = append(children, n.children...)
	return n.with(append(children, child))
}

func (n *immutableSequence) WithElements(children ...Node) GroupNode {
	merged := make([]Node, 0, len(n.children)+len(children))
	merged = append(merged, n.children...)
	return n.with(append(merged, children...))
}

func (n *immutableSequence) WithoutElement(child Node) GroupNode {
	children := slices.DeleteFunc(slices.Clone(n.children), func(c Node) bool {
		return Equal(c, child)
	})
	if len(children) == len(n.children) {
		return n
	}
	return n.with(children)
}

func (n *immutableSequence) WithoutElements(children ...Node) GroupNode {
	kept := slices.DeleteFunc(slices.Clone(n.children), func(c Node) bool {
		return slices.ContainsFunc(children, func(x Node) bool { return Equal(c, x) })
	})
	if len(kept) == len(n.children) {
		return n
	}
	return n.with(kept)
}

func (n *immutableSequence) WithoutContent() GroupNode {
	return n.with(nil)
}

func (n *immutableSequence) WithSelectedElements(keep func(Node) bool) GroupNode {
	kept := slices.DeleteFunc(slices.Clone(n.children), func(c Node) bool { return !keep(c) })
	if len(kept) == len(n.children) {
		return n
	}
	return n.with(kept)
}

func (n *immutableSequence) WithoutFilteredElements(drop func(Node) bool) GroupNode {
	kept := slices.DeleteFunc(slices.Clone(n.children), drop)
	if len(kept) == len(n.children) {
		return n
	}
	return n.with(kept)
}

func (n *immutableSequence) WithReplacements(match func(Node) bool, transform func(Node) Node) GroupNode {
	children := slices.Clone(n.children)
	changed := false
	for i, c := range children {
		if match(c) {
			children[i] = transform(c)
			changed = true
		}
	}
	if !changed {
		return n
	}
	return n.with(children)
}

func (n *immutableSequence) WithAttributes(attrs KeyValueNode) Node {
	return &immutableSequence{children: n.children, attrs: attrs}
}

func (n *immutableSequence) WithAttribute(key, value Node) Node {
	return &immutableSequence{children: n.children, attrs: n.attrs.WithElement(key, value)}
}

func (n *immutableSequence) WithoutAttribute(key Node) Node {
	return &immutableSequence{children: n.children, attrs: n.attrs.WithoutKey(key)}
}

func (n *immutableSequence) WithoutAttributes() Node {
	return &immutableSequence{children: n.children, attrs: n.attrs.WithoutContent()}
}
