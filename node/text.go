package node

// Text returns an immutable text node.
func Text(value string) TextNode {
	return &immutableText{value: value, attrs: emptyKeyValue}
}

// TextWithAttrs returns an immutable text node with the given
// attributes.
func TextWithAttrs(value string, attrs KeyValueNode) TextNode {
	return &immutableText{value: value, attrs: attrs}
}

// MutableText returns a mutable text node.
func MutableText(value string) TextNode {
	return &mutableText{value: value, attrs: MutableKeyValue()}
}

// MutableTextWithAttrs returns a mutable text node with the given
// attributes.
func MutableTextWithAttrs(value string, attrs KeyValueNode) TextNode {
	return &mutableText{value: value, attrs: attrs}
}

type mutableText struct {
	value string
	attrs KeyValueNode
}

func (n *mutableText) Kind() Kind               { return TextKind }
func (n *mutableText) Mutable() bool            { return true }
func (n *mutableText) Attributes() KeyValueNode { return n.attrs }
func (n *mutableText) ScalarValue() any         { return n.value }
func (n *mutableText) Value() string            { return n.value }

func (n *mutableText) WithValue(value string) TextNode {
	n.value = value
	return n
}

func (n *mutableText) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableText) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableText) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableText) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}

type immutableText struct {
	value string
	attrs KeyValueNode
}

func (n *immutableText) Kind() Kind               { return TextKind }
func (n *immutableText) Mutable() bool            { return false }
func (n *immutableText) Attributes() KeyValueNode { return n.attrs }
func (n *immutableText) ScalarValue() any         { return n.value }
func (n *immutableText) Value() string            { return n.value }

func (n *immutableText) WithValue(value string) TextNode {
	return &immutableText{value: value, attrs: n.attrs}
}

func (n *immutableText) WithAttributes(attrs KeyValueNode) Node {
	return &immutableText{value: n.value, attrs: attrs}
}

func (n *immutableText) WithAttribute(key, value Node) Node {
	return &immutableText{value: n.value, attrs: n.attrs.WithElement(key, value)}
}

func (n *immutableText) WithoutAttribute(key Node) Node {
	return &immutableText{value: n.value, attrs: n.attrs.WithoutKey(key)}
}

func (n *immutableText) WithoutAttributes() Node {
	return &immutableText{value: n.value, attrs: n.attrs.WithoutContent()}
}
