package node

// Ignorant returns the key-value sentinel that absorbs every
// operation: reads find nothing, writes return the sentinel itself.
// It backs the attribute chain (attributes of attributes are Ignorant)
// and disables attributes entirely when passed to a WithAttrs
// constructor.
func Ignorant() KeyValueNode {
	return ignorantKeyValue
}

// IgnorantGroup returns the group-flavored absorbing sentinel.
func IgnorantGroup() GroupNode {
	return ignorantGroup
}

var (
	ignorantKeyValue = &ignorantKV{}
	ignorantGroup    = &ignorantSeq{}
)

type ignorantKV struct{}

func (n *ignorantKV) Kind() Kind               { return KeyValueKind }
func (n *ignorantKV) Mutable() bool            { return false }
func (n *ignorantKV) Attributes() KeyValueNode { return n }
func (n *ignorantKV) Empty() bool              { return true }
func (n *ignorantKV) Count() int64             { return 0 }
func (n *ignorantKV) Content() []Entry         { return nil }
func (n *ignorantKV) Keys() []Node             { return nil }
func (n *ignorantKV) Values() []Node           { return nil }
func (n *ignorantKV) ToMap() map[Node]Node     { return map[Node]Node{} }

func (n *ignorantKV) RequestValue(key Node) Node { return nil }

func (n *ignorantKV) Value(key Node) (Node, error) {
	return nil, missingKeyErr(key)
}

func (n *ignorantKV) ValueOr(key, fallback Node) Node { return fallback }
func (n *ignorantKV) HasKey(key Node) bool            { return false }

func (n *ignorantKV) WithEntry(key, value Node) KeyValueNode   { return n }
func (n *ignorantKV) WithElement(key, value Node) KeyValueNode { return n }
func (n *ignorantKV) WithKey(key, value Node) KeyValueNode     { return n }

func (n *ignorantKV) WithKeyFunc(key Node, factory func(key Node) Node) KeyValueNode {
	return n
}

func (n *ignorantKV) WithoutKey(key Node) KeyValueNode            { return n }
func (n *ignorantKV) WithoutElement(key, value Node) KeyValueNode { return n }
func (n *ignorantKV) WithContent(entries ...Entry) KeyValueNode   { return n }
func (n *ignorantKV) WithoutContent() KeyValueNode                { return n }

func (n *ignorantKV) WithSelectedEntries(keep func(Entry) bool) KeyValueNode {
	return n
}

func (n *ignorantKV) WithoutFilteredEntries(drop func(Entry) bool) KeyValueNode {
	return n
}

func (n *ignorantKV) WithReplacements(match func(Entry) bool, transform func(Entry) Entry) KeyValueNode {
	return n
}

func (n *ignorantKV) WithAttributes(attrs KeyValueNode) Node { return n }
func (n *ignorantKV) WithAttribute(key, value Node) Node     { return n }
func (n *ignorantKV) WithoutAttribute(key Node) Node         { return n }
func (n *ignorantKV) WithoutAttributes() Node                { return n }

type ignorantSeq struct{}

func (n *ignorantSeq) Kind() Kind               { return GroupKind }
func (n *ignorantSeq) Mutable() bool            { return false }
func (n *ignorantSeq) Attributes() KeyValueNode { return ignorantKeyValue }
func (n *ignorantSeq) Empty() bool              { return true }
func (n *ignorantSeq) Children() []Node         { return nil }

func (n *ignorantSeq) WithContent(children ...Node) GroupNode  { return n }
func (n *ignorantSeq) WithElement(child Node) GroupNode        { return n }
func (n *ignorantSeq) WithElements(children ...Node) GroupNode { return n }
func (n *ignorantSeq) WithoutElement(child Node) GroupNode     { return n }

func (n *ignorantSeq) WithoutElements(children ...Node) GroupNode { return n }
func (n *ignorantSeq) WithoutContent() GroupNode                  { return n }

func (n *ignorantSeq) WithSelectedElements(keep func(Node) bool) GroupNode {
	return n
}

func (n *ignorantSeq) WithoutFilteredElements(drop func(Node) bool) GroupNode {
	return n
}

func (n *ignorantSeq) WithReplacements(match func(Node) bool, transform func(Node) Node) GroupNode {
	return n
}

func (n *ignorantSeq) WithAttributes(attrs KeyValueNode) Node { return n }
func (n *ignorantSeq) WithAttribute(key, value Node) Node     { return n }
func (n *ignorantSeq) WithoutAttribute(key Node) Node         { return n }
func (n *ignorantSeq) WithoutAttributes() Node                { return n }
