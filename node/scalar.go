package node

// ScalarNode is a leaf node enclosing a single value of a particular
// type. Null nodes are not scalar; they stand for the absence of a
// value rather than a value.
type ScalarNode interface {
	Node

	// ScalarValue returns the enclosed value in boxed form. It is
	// never nil.
	ScalarValue() any
}

// FlagNode encloses a boolean.
type FlagNode interface {
	ScalarNode
	Value() bool
	WithValue(value bool) FlagNode
	// Invert flips the enclosed value.
	Invert() FlagNode
}

// NumericNode encloses a number. The model carries every number as a
// float64, wide enough for anything the common formats round-trip.
type NumericNode interface {
	ScalarNode
	Value() float64
	WithValue(value float64) NumericNode
}

// TextNode encloses a string.
type TextNode interface {
	ScalarNode
	Value() string
	WithValue(value string) TextNode
}
