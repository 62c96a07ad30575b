package node

// Numeric returns an immutable numeric node.
func Numeric(value float64) NumericNode {
	return &immutableNumeric{value: value, attrs: emptyKeyValue}
}

// NumericWithAttrs returns an immutable numeric node with the given
// attributes.
func NumericWithAttrs(value float64, attrs KeyValueNode) NumericNode {
	return &immutableNumeric{value: value, attrs: attrs}
}

// MutableNumeric returns a mutable numeric node.
func MutableNumeric(value float64) NumericNode {
	return &mutableNumeric{value: value, attrs: MutableKeyValue()}
}

// MutableNumericWithAttrs returns a mutable numeric node with the
// given attributes.
func MutableNumericWithAttrs(value float64, attrs KeyValueNode) NumericNode {
	return &mutableNumeric{value: value, attrs: attrs}
}

type mutableNumeric struct {
	value float64
	attrs KeyValueNode
}

func (n *mutableNumeric) Kind() Kind               { return NumericKind }
func (n *mutableNumeric) Mutable() bool            { return true }
func (n *mutableNumeric) Attributes() KeyValueNode { return n.attrs }
func (n *mutableNumeric) ScalarValue() any         { return n.value }
func (n *mutableNumeric) Value() float64           { return n.value }

func (n *mutableNumeric) WithValue(value float64) NumericNode {
	n.value = value
	return n
}

func (n *mutableNumeric) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableNumeric) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableNumeric) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableNumeric) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}

type immutableNumeric struct {
	value float64
	attrs KeyValueNode
}

func (n *immutableNumeric) Kind() Kind               { return NumericKind }
func (n *immutableNumeric) Mutable() bool            { return false }
func (n *immutableNumeric) Attributes() KeyValueNode { return n.attrs }
func (n *immutableNumeric) ScalarValue() any         { return n.value }
func (n *immutableNumeric) Value() float64           { return n.value }

func (n *immutableNumeric) WithValue(value float64) NumericNode {
	return &immutableNumeric{value: value, attrs: n.attrs}
}

func (n *immutableNumeric) WithAttributes(attrs KeyValueNode) Node {
	return &immutableNumeric{value: n.value, attrs: attrs}
}

func (n *immutableNumeric) WithAttribute(key, value Node) Node {
	return &immutableNumeric{value: n.value, attrs: n.attrs.WithElement(key, value)}
}

func (n *immutableNumeric) WithoutAttribute(key Node) Node {
	return &immutableNumeric{value: n.value, attrs: n.attrs.WithoutKey(key)}
}

func (n *immutableNumeric) WithoutAttributes() Node {
	return &immutableNumeric{value: n.value, attrs: n.attrs.WithoutContent()}
}
