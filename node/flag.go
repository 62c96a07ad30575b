package node

// Flag returns an immutable flag node.
func Flag(value bool) FlagNode {
	if value {
		return sharedTrue
	}
	return sharedFalse
}

// FlagWithAttrs returns an immutable flag node with the given
// attributes.
func FlagWithAttrs(value bool, attrs KeyValueNode) FlagNode {
	return &immutableFlag{value: value, attrs: attrs}
}

// MutableFlag returns a mutable flag node.
func MutableFlag(value bool) FlagNode {
	return &mutableFlag{value: value, attrs: MutableKeyValue()}
}

// MutableFlagWithAttrs returns a mutable flag node with the given
// attributes.
func MutableFlagWithAttrs(value bool, attrs KeyValueNode) FlagNode {
	return &mutableFlag{value: value, attrs: attrs}
}

// True returns the shared immutable true node.
func True() FlagNode { return sharedTrue }

// False returns the shared immutable false node.
func False() FlagNode { return sharedFalse }

var (
	sharedTrue  = &immutableFlag{value: true, attrs: emptyKeyValue}
	sharedFalse = &immutableFlag{value: false, attrs: emptyKeyValue}
)

type mutableFlag struct {
	value bool
	attrs KeyValueNode
}

func (n *mutableFlag) Kind() Kind               { return FlagKind }
func (n *mutableFlag) Mutable() bool            { return true }
func (n *mutableFlag) Attributes() KeyValueNode { return n.attrs }
func (n *mutableFlag) ScalarValue() any         { return n.value }
func (n *mutableFlag) Value() bool              { return n.value }

func (n *mutableFlag) WithValue(value bool) FlagNode {
	n.value = value
	return n
}

func (n *mutableFlag) Invert() FlagNode {
	return n.WithValue(!n.value)
}

func (n *mutableFlag) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableFlag) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableFlag) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableFlag) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}

type immutableFlag struct {
	value bool
	attrs KeyValueNode
}

func (n *immutableFlag) Kind() Kind               { return FlagKind }
func (n *immutableFlag) Mutable() bool            { return false }
func (n *immutableFlag) Attributes() KeyValueNode { return n.attrs }
func (n *immutableFlag) ScalarValue() any         { return n.value }
func (n *immutableFlag) Value() bool              { return n.value }

func (n *immutableFlag) WithValue(value bool) FlagNode {
	return &immutableFlag{value: value, attrs: n.attrs}
}

func (n *immutableFlag) Invert() FlagNode {
	return &immutableFlag{value: !n.value, attrs: n.attrs}
}

func (n *immutableFlag) WithAttributes(attrs KeyValueNode) Node {
	return &immutableFlag{value: n.value, attrs: attrs}
}

func (n *immutableFlag) WithAttribute(key, value Node) Node {
	return &immutableFlag{value: n.value, attrs: n.attrs.WithElement(key, value)}
}

func (n *immutableFlag) WithoutAttribute(key Node) Node {
	return &immutableFlag{value: n.value, attrs: n.attrs.WithoutKey(key)}
}

func (n *immutableFlag) WithoutAttributes() Node {
	return &immutableFlag{value: n.value, attrs: n.attrs.WithoutContent()}
}
