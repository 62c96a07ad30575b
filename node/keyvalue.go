package node

import (
	"fmt"
	"slices"
)

// Entry is a single key-value pair. Keys are arbitrary nodes, not just
// text: the common formats only ever produce text keys, but nothing
// here depends on that.
type Entry struct {
	Key   Node
	Value Node
}

// KeyValueNode represents a dictionary. Keys compare by Equal, so two
// distinct instances carrying the same value address the same slot.
// The base contract forbids repeated keys; see MultiKeyValueNode for
// the repetition-tolerant extension.
type KeyValueNode interface {
	ContainerNode

	// RequestValue returns the value under key, or nil when the key
	// is absent. It is the non-failing sibling of Value.
	RequestValue(key Node) Node

	// Value returns the value under key, or ErrNotFound.
	Value(key Node) (Node, error)

	// ValueOr returns the value under key, or fallback when absent.
	ValueOr(key, fallback Node) Node

	// HasKey reports whether key is present.
	HasKey(key Node) bool

	// Content returns a snapshot of the entries. Order is not part of
	// the contract; implementations may keep insertion order but
	// callers must not rely on it.
	Content() []Entry

	// Keys returns a snapshot of the keys.
	Keys() []Node

	// Values returns a snapshot of the values.
	Values() []Node

	Count() int64

	// ToMap returns a detached snapshot keyed by node identity.
	// Later changes to the node do not show up in the map, and
	// changes to the map do not reach the node.
	ToMap() map[Node]Node

	// WithEntry sets the value under key, inserting or replacing.
	WithEntry(key, value Node) KeyValueNode

	// WithElement ensures key maps to value. It is WithEntry under a
	// container-flavored name.
	WithElement(key, value Node) KeyValueNode

	// WithKey inserts value under key only when the key is absent; a
	// present key leaves the node unchanged.
	WithKey(key, value Node) KeyValueNode

	// WithKeyFunc inserts factory(key) under key only when the key is
	// absent. The factory is not called for present keys.
	WithKeyFunc(key Node, factory func(key Node) Node) KeyValueNode

	// WithoutKey removes the entry under key. Removing an absent key
	// is a no-op.
	WithoutKey(key Node) KeyValueNode

	// WithoutElement removes the entry only when both its key and
	// value match.
	WithoutElement(key, value Node) KeyValueNode

	// WithContent replaces all entries. When the input repeats a key,
	// the first occurrence wins.
	WithContent(entries ...Entry) KeyValueNode

	// WithoutContent removes every entry.
	WithoutContent() KeyValueNode

	// WithSelectedEntries keeps only the entries keep accepts.
	WithSelectedEntries(keep func(Entry) bool) KeyValueNode

	// WithoutFilteredEntries removes the entries drop accepts.
	WithoutFilteredEntries(drop func(Entry) bool) KeyValueNode

	// WithReplacements rewrites every entry match accepts through
	// transform.
	WithReplacements(match func(Entry) bool, transform func(Entry) Entry) KeyValueNode
}

// KeyValue returns an immutable key-value node holding the given
// entries, first occurrence winning on repeated keys.
func KeyValue(entries ...Entry) KeyValueNode {
	if len(entries) == 0 {
		return emptyKeyValue
	}
	return &immutableKeyValue{entries: dedupeEntries(entries), attrs: ignorantKeyValue}
}

// KeyValueWithAttrs returns an immutable key-value node with the given
// attributes.
func KeyValueWithAttrs(attrs KeyValueNode, entries ...Entry) KeyValueNode {
	return &immutableKeyValue{entries: dedupeEntries(entries), attrs: attrs}
}

// MutableKeyValue returns a mutable key-value node holding the given
// entries, first occurrence winning on repeated keys.
func MutableKeyValue(entries ...Entry) KeyValueNode {
	return &mutableKeyValue{entries: dedupeEntries(entries), attrs: ignorantKeyValue}
}

// MutableKeyValueWithAttrs returns a mutable key-value node with the
// given attributes.
func MutableKeyValueWithAttrs(attrs KeyValueNode, entries ...Entry) KeyValueNode {
	return &mutableKeyValue{entries: dedupeEntries(entries), attrs: attrs}
}

var emptyKeyValue = &immutableKeyValue{attrs: ignorantKeyValue}

func dedupeEntries(entries []Entry) []Entry {
	res := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if findEntry(res, e.Key) == -1 {
			res = append(res, e)
		}
	}
	return res
}

func findEntry(entries []Entry, key Node) int {
	for i := range entries {
		if Equal(entries[i].Key, key) {
			return i
		}
	}
	return -1
}

func entryKeys(entries []Entry) []Node {
	res := make([]Node, len(entries))
	for i := range entries {
		res[i] = entries[i].Key
	}
	return res
}

func entryValues(entries []Entry) []Node {
	res := make([]Node, len(entries))
	for i := range entries {
		res[i] = entries[i].Value
	}
	return res
}

func entryMap(entries []Entry) map[Node]Node {
	res := make(map[Node]Node, len(entries))
	for _, e := range entries {
		res[e.Key] = e.Value
	}
	return res
}

func missingKeyErr(key Node) error {
	return fmt.Errorf("no value for key %s: %w", Dump(key), ErrNotFound)
}

type mutableKeyValue struct {
	entries []Entry
	attrs   KeyValueNode
}

func (n *mutableKeyValue) Kind() Kind               { return KeyValueKind }
func (n *mutableKeyValue) Mutable() bool            { return true }
func (n *mutableKeyValue) Attributes() KeyValueNode { return n.attrs }
func (n *mutableKeyValue) Empty() bool              { return len(n.entries) == 0 }
func (n *mutableKeyValue) Count() int64             { return int64(len(n.entries)) }
func (n *mutableKeyValue) Content() []Entry         { return slices.Clone(n.entries) }
func (n *mutableKeyValue) Keys() []Node             { return entryKeys(n.entries) }
func (n *mutableKeyValue) Values() []Node           { return entryValues(n.entries) }
func (n *mutableKeyValue) ToMap() map[Node]Node     { return entryMap(n.entries) }

func (n *mutableKeyValue) RequestValue(key Node) Node {
	if i := findEntry(n.entries, key); i != -1 {
		return n.entries[i].Value
	}
	return nil
}

func (n *mutableKeyValue) Value(key Node) (Node, error) {
	if v := n.RequestValue(key); v != nil {
		return v, nil
	}
	return nil, missingKeyErr(key)
}

func (n *mutableKeyValue) ValueOr(key, fallback Node) Node {
	if v := n.RequestValue(key); v != nil {
		return v
	}
	return fallback
}

func (n *mutableKeyValue) HasKey(key Node) bool {
	return findEntry(n.entries, key) != -1
}

func (n *mutableKeyValue) WithEntry(key, value Node) KeyValueNode {
	if i := findEntry(n.entries, key); i != -1 {
		n.entries[i].Value = value
		return n
	}
	n.entries = append(n.entries, Entry{Key: key, Value: value})
	return n
}

func (n *mutableKeyValue) WithElement(key, value Node) KeyValueNode {
	return n.WithEntry(key, value)
}

func (n *mutableKeyValue) WithKey(key, value Node) KeyValueNode {
	if n.HasKey(key) {
		return n
	}
	n.entries = append(n.entries, Entry{Key: key, Value: value})
	return n
}

func (n *mutableKeyValue) WithKeyFunc(key Node, factory func(key Node) Node) KeyValueNode {
	if n.HasKey(key) {
		return n
	}
	n.entries = append(n.entries, Entry{Key: key, Value: factory(key)})
	return n
}

func (n *mutableKeyValue) WithoutKey(key Node) KeyValueNode {
	if i := findEntry(n.entries, key); i != -1 {
		n.entries = slices.Delete(n.entries, i, i+1)
	}
	return n
}

func (n *mutableKeyValue) WithoutElement(key, value Node) KeyValueNode {
	if i := findEntry(n.entries, key); i != -1 && Equal(n.entries[i].Value, value) {
		n.entries = slices.Delete(n.entries, i, i+1)
	}
	return n
}

func (n *mutableKeyValue) WithContent(entries ...Entry) KeyValueNode {
	n.entries = dedupeEntries(entries)
	return n
}

func (n *mutableKeyValue) WithoutContent() KeyValueNode {
	n.entries = nil
	return n
}

func (n *mutableKeyValue) WithSelectedEntries(keep func(Entry) bool) KeyValueNode {
	n.entries = slices.DeleteFunc(n.entries, func(e Entry) bool { return !keep(e) })
	return n
}

func (n *mutableKeyValue) WithoutFilteredEntries(drop func(Entry) bool) KeyValueNode {
	n.entries = slices.DeleteFunc(n.entries, drop)
	return n
}

func (n *mutableKeyValue) WithReplacements(match func(Entry) bool, transform func(Entry) Entry) KeyValueNode {
	for i, e := range n.entries {
		if match(e) {
			n.entries[i] = transform(e)
		}
	}
	return n
}

func (n *mutableKeyValue) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableKeyValue) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableKeyValue) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableKeyValue) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}

type immutableKeyValue struct {
	entries []Entry
	attrs   KeyValueNode
}

func (n *immutableKeyValue) with(entries []Entry) *immutableKeyValue {
	return &immutableKeyValue{entries: entries, attrs: n.attrs}
}

func (n *immutableKeyValue) Kind() Kind               { return KeyValueKind }
func (n *immutableKeyValue) Mutable() bool            { return false }
func (n *immutableKeyValue) Attributes() KeyValueNode { return n.attrs }
func (n *immutableKeyValue) Empty() bool              { return len(n.entries) == 0 }
func (n *immutableKeyValue) Count() int64             { return int64(len(n.entries)) }
func (n *immutableKeyValue) Content() []Entry         { return slices.Clone(n.entries) }
func (n *immutableKeyValue) Keys() []Node             { return entryKeys(n.entries) }
func (n *immutableKeyValue) Values() []Node           { return entryValues(n.entries) }
func (n *immutableKeyValue) ToMap() map[Node]Node     { return entryMap(n.entries) }

func (n *immutableKeyValue) RequestValue(key Node) Node {
	if i := findEntry(n.entries, key); i != -1 {
		return n.entries[i].Value
	}
	return nil
}

func (n *immutableKeyValue) Value(key Node) (Node, error) {
	if v := n.RequestValue(key); v != nil {
		return v, nil
	}
	return nil, missingKeyErr(key)
}

func (n *immutableKeyValue) ValueOr(key, fallback Node) Node {
	if v := n.RequestValue(key); v != nil {
		return v
	}
	return fallback
}

func (n *immutableKeyValue) HasKey(key Node) bool {
	return findEntry(n.entries, key) != -1
}

func (n *immutableKeyValue) WithEntry(key, value Node) KeyValueNode {
	if i := findEntry(n.entries, key); i != -1 {
		if Equal(n.entries[i].Value, value) {
			return n
		}
		entries := slices.Clone(n.entries)
		entries[i].Value = value
		return n.with(entries)
	}
	entries := make([]Entry, 0, len(n.entries)+1)
	entries = append(entries, n.entries...)
	return n.with(append(entries, Entry{Key: key, Value: value}))
}

func (n *immutableKeyValue) WithElement(key, value Node) KeyValueNode {
	return n.WithEntry(key, value)
}

func (n *immutableKeyValue) WithKey(key, value Node) KeyValueNode {
	if n.HasKey(key) {
		return n
	}
	entries := make([]Entry, 0, len(n.entries)+1)
	entries = append(entries, n.entries...)
	return n.with(append(entries, Entry{Key: key, Value: value}))
}

func (n *immutableKeyValue) WithKeyFunc(key Node, factory func(key Node) Node) KeyValueNode {
	if n.HasKey(key) {
		return n
	}
	entries := make([]Entry, 0, len(n.entries)+1)
	entries = append(entries, n.entries...)
	return n.with(append(entries, Entry{Key: key, Value: factory(key)}))
}

func (n *immutableKeyValue) WithoutKey(key Node) KeyValueNode {
	i := findEntry(n.entries, key)
	if i == -1 {
		return n
	}
	return n.with(slices.Delete(slices.Clone(n.entries), i, i+1))
}

func (n *immutableKeyValue) WithoutElement(key, value Node) KeyValueNode {
	i := findEntry(n.entries, key)
	if i == -1 || !Equal(n.entries[i].Value, value) {
		return n
	}
	return n.with(slices.Delete(slices.Clone(n.entries), i, i+1))
}

func (n *immutableKeyValue) WithContent(entries ...Entry) KeyValueNode {
	return n.with(dedupeEntries(entries))
}

func (n *immutableKeyValue) WithoutContent() KeyValueNode {
	if len(n.entries) == 0 {
		return n
	}
	return n.with(nil)
}

func (n *immutableKeyValue) WithSelectedEntries(keep func(Entry) bool) KeyValueNode {
	kept := slices.DeleteFunc(slices.Clone(n.entries), func(e Entry) bool { return !keep(e) })
	if len(kept) == len(n.entries) {
		return n
	}
	return n.with(kept)
}

func (n *immutableKeyValue) WithoutFilteredEntries(drop func(Entry) bool) KeyValueNode {
	kept := slices.DeleteFunc(slices.Clone(n.entries), drop)
	if len(kept) == len(n.entries) {
		return n
	}
	return n.with(kept)
}

func (n *immutableKeyValue) WithReplacements(match func(Entry) bool, transform func(Entry) Entry) KeyValueNode {
	entries := slices.Clone(n.entries)
	changed := false
	for i, e := range entries {
		if match(e) {
			entries[i] = transform(e)
			changed = true
		}
	}
	if !changed {
		return n
	}
	return n.with(entries)
}

func (n *immutableKeyValue) WithAttributes(attrs KeyValueNode) Node {
	return &immutableKeyValue{entries: n.entries, attrs: attrs}
}

func (n *immutableKeyValue) WithAttribute(key, value Node) Node {
	return &immutableKeyValue{entries: n.entries, attrs: n.attrs.WithElement(key, value)}
}

func (n *immutableKeyValue) WithoutAttribute(key Node) Node {
	return &immutableKeyValue{entries: n.entries, attrs: n.attrs.WithoutKey(key)}
}

func (n *immutableKeyValue) WithoutAttributes() Node {
	return &immutableKeyValue{entries: n.entries, attrs: n.attrs.WithoutContent()}
}
