package node

// Null returns an immutable null node. Null is a kind of its own, not
// a scalar with a nil value.
func Null() Node {
	return sharedNull
}

// NullWithAttrs returns an immutable null node with the given
// attributes.
func NullWithAttrs(attrs KeyValueNode) Node {
	return &immutableNull{attrs: attrs}
}

// MutableNull returns a mutable null node.
func MutableNull() Node {
	return &mutableNull{attrs: MutableKeyValue()}
}

// MutableNullWithAttrs returns a mutable null node with the given
// attributes.
func MutableNullWithAttrs(attrs KeyValueNode) Node {
	return &mutableNull{attrs: attrs}
}

var sharedNull = &immutableNull{attrs: emptyKeyValue}

type mutableNull struct {
	attrs KeyValueNode
}

func (n *mutableNull) Kind() Kind               { return NullKind }
func (n *mutableNull) Mutable() bool            { return true }
func (n *mutableNull) Attributes() KeyValueNode { return n.attrs }

func (n *mutableNull) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableNull) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableNull) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableNull) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}

type immutableNull struct {
	attrs KeyValueNode
}

func (n *immutableNull) Kind() Kind               { return NullKind }
func (n *immutableNull) Mutable() bool            { return false }
func (n *immutableNull) Attributes() KeyValueNode { return n.attrs }

func (n *immutableNull) WithAttributes(attrs KeyValueNode) Node {
	return &immutableNull{attrs: attrs}
}

func (n *immutableNull) WithAttribute(key, value Node) Node {
	return &immutableNull{attrs: n.attrs.WithElement(key, value)}
}

func (n *immutableNull) WithoutAttribute(key Node) Node {
	return &immutableNull{attrs: n.attrs.WithoutKey(key)}
}

func (n *immutableNull) WithoutAttributes() Node {
	return &immutableNull{attrs: n.attrs.WithoutContent()}
}
