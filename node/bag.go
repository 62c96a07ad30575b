package node

import "slices"

// MutableBag returns a mutable group with no ordering promise: it is
// neither Ordered nor Indexed, so As conversions to those capabilities
// fail. Children returns members in an unspecified order.
func MutableBag(children ...Node) GroupNode {
	return &mutableBag{children: slices.Clone(children), attrs: MutableKeyValue()}
}

// MutableBagWithAttrs returns a mutable unordered group with the given
// attributes.
func MutableBagWithAttrs(attrs KeyValueNode, children ...Node) GroupNode {
	return &mutableBag{children: slices.Clone(children), attrs: attrs}
}

type mutableBag struct {
	children []Node
	attrs    KeyValueNode
}

func (n *mutableBag) Kind() Kind               { return GroupKind }
func (n *mutableBag) Mutable() bool            { return true }
func (n *mutableBag) Attributes() KeyValueNode { return n.attrs }
func (n *mutableBag) Empty() bool              { return len(n.children) == 0 }
func (n *mutableBag) Count() int64             { return int64(len(n.children)) }
func (n *mutableBag) Children() []Node         { return slices.Clone(n.children) }

func (n *mutableBag) WithContent(children ...Node) GroupNode {
	n.children = slices.Clone(children)
	return n
}

func (n *mutableBag) WithElement(child Node) GroupNode {
	n.children = append(n.children, child)
	return n
}

func (n *mutableBag) WithElements(children ...Node) GroupNode {
	n.children = append(n.children, children...)
	return n
}

func (n *mutableBag) WithoutElement(child Node) GroupNode {
	n.children = slices.DeleteFunc(n.children, func(c Node) bool {
		return Equal(c, child)
	})
	return n
}

func (n *mutableBag) WithoutElements(children ...Node) GroupNode {
	n.children = slices.DeleteFunc(n.children, func(c Node) bool {
		return slices.ContainsFunc(children, func(x Node) bool { return Equal(c, x) })
	})
	return n
}

func (n *mutableBag) WithoutContent() GroupNode {
	n.children = nil
	return n
}

func (n *mutableBag) WithSelectedElements(keep func(Node) bool) GroupNode {
	n.children = slices.DeleteFunc(n.children, func(c Node) bool { return !keep(c) })
	return n
}

func (n *mutableBag) WithoutFilteredElements(drop func(Node) bool) GroupNode {
	n.children = slices.DeleteFunc(n.children, drop)
	return n
}

func (n *mutableBag) WithReplacements(match func(Node) bool, transform func(Node) Node) GroupNode {
	for i, c := range n.children {
		if match(c) {
			n.children[i] = transform(c)
		}
	}
	return n
}

func (n *mutableBag) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableBag) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableBag) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableBag) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}
