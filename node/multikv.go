package node

import (
	"fmt"
	"slices"
)

// MultiKeyValueNode is the repetition-tolerant dictionary: the same
// key may appear under several entries. Single-value accessors
// inherited from KeyValueNode address the first occurrence; the All
// accessors see every one.
type MultiKeyValueNode interface {
	KeyValueNode

	// RequestAllValues returns the values under every occurrence of
	// key in entry order, or nil when the key is absent.
	RequestAllValues(key Node) []Node

	// AllValues returns the values under every occurrence of key, or
	// ErrNotFound when the key is absent.
	AllValues(key Node) ([]Node, error)

	// Occurrences reports how many entries carry key.
	Occurrences(key Node) int64

	// AddValue appends an entry without touching earlier occurrences
	// of key.
	AddValue(key, value Node) MultiKeyValueNode
}

// MutableMultiKeyValue returns a mutable repetition-tolerant key-value
// node. The given entries are kept as-is, repeated keys included.
func MutableMultiKeyValue(entries ...Entry) MultiKeyValueNode {
	return &mutableMultiKeyValue{entries: slices.Clone(entries), attrs: ignorantKeyValue}
}

type mutableMultiKeyValue struct {
	entries []Entry
	attrs   KeyValueNode
}

func (n *mutableMultiKeyValue) Kind() Kind               { return KeyValueKind }
func (n *mutableMultiKeyValue) Mutable() bool            { return true }
func (n *mutableMultiKeyValue) Attributes() KeyValueNode { return n.attrs }
func (n *mutableMultiKeyValue) Empty() bool              { return len(n.entries) == 0 }
func (n *mutableMultiKeyValue) Count() int64             { return int64(len(n.entries)) }
func (n *mutableMultiKeyValue) Content() []Entry         { return slices.Clone(n.entries) }
func (n *mutableMultiKeyValue) Keys() []Node             { return entryKeys(n.entries) }
func (n *mutableMultiKeyValue) Values() []Node           { return entryValues(n.entries) }

// ToMap keeps the first occurrence of each repeated key.
func (n *mutableMultiKeyValue) ToMap() map[Node]Node {
	res := make(map[Node]Node, len(n.entries))
	var seen []Entry
	for _, e := range n.entries {
		if findEntry(seen, e.Key) != -1 {
			continue
		}
		seen = append(seen, e)
		res[e.Key] = e.Value
	}
	return res
}

func (n *mutableMultiKeyValue) RequestValue(key Node) Node {
	if i := findEntry(n.entries, key); i != -1 {
		return n.entries[i].Value
	}
	return nil
}

func (n *mutableMultiKeyValue) Value(key Node) (Node, error) {
	if v := n.RequestValue(key); v != nil {
		return v, nil
	}
	return nil, missingKeyErr(key)
}

func (n *mutableMultiKeyValue) ValueOr(key, fallback Node) Node {
	if v := n.RequestValue(key); v != nil {
		return v
	}
	return fallback
}

func (n *mutableMultiKeyValue) HasKey(key Node) bool {
	return findEntry(n.entries, key) != -1
}

func (n *mutableMultiKeyValue) RequestAllValues(key Node) []Node {
	var res []Node
	for _, e := range n.entries {
		if Equal(e.Key, key) {
			res = append(res, e.Value)
		}
	}
	return res
}

func (n *mutableMultiKeyValue) AllValues(key Node) ([]Node, error) {
	res := n.RequestAllValues(key)
	if res == nil {
		return nil, fmt.Errorf("no occurrences of key %s: %w", Dump(key), ErrNotFound)
	}
	return res, nil
}

func (n *mutableMultiKeyValue) Occurrences(key Node) int64 {
	var c int64
	for _, e := range n.entries {
		if Equal(e.Key, key) {
			c++
		}
	}
	return c
}

func (n *mutableMultiKeyValue) AddValue(key, value Node) MultiKeyValueNode {
	n.entries = append(n.entries, Entry{Key: key, Value: value})
	return n
}

func (n *mutableMultiKeyValue) WithEntry(key, value Node) KeyValueNode {
	if i := findEntry(n.entries, key); i != -1 {
		n.entries[i].Value = value
		return n
	}
	n.entries = append(n.entries, Entry{Key: key, Value: value})
	return n
}

func (n *mutableMultiKeyValue) WithElement(key, value Node) KeyValueNode {
	return n.WithEntry(key, value)
}

func (n *mutableMultiKeyValue) WithKey(key, value Node) KeyValueNode {
	if n.HasKey(key) {
		return n
	}
	n.entries = append(n.entries, Entry{Key: key, Value: value})
	return n
}

func (n *mutableMultiKeyValue) WithKeyFunc(key Node, factory func(key Node) Node) KeyValueNode {
	if n.HasKey(key) {
		return n
	}
	n.entries = append(n.entries, Entry{Key: key, Value: factory(key)})
	return n
}

// WithoutKey removes every occurrence of key.
func (n *mutableMultiKeyValue) WithoutKey(key Node) KeyValueNode {
	n.entries = slices.DeleteFunc(n.entries, func(e Entry) bool {
		return Equal(e.Key, key)
	})
	return n
}

func (n *mutableMultiKeyValue) WithoutElement(key, value Node) KeyValueNode {
	n.entries = slices.DeleteFunc(n.entries, func(e Entry) bool {
		return Equal(e.Key, key) && Equal(e.Value, value)
	})
	return n
}

func (n *mutableMultiKeyValue) WithContent(entries ...Entry) KeyValueNode {
	n.entries = slices.Clone(entries)
	return n
}

func (n *mutableMultiKeyValue) WithoutContent() KeyValueNode {
	n.entries = nil
	return n
}

func (n *mutableMultiKeyValue) WithSelectedEntries(keep func(Entry) bool) KeyValueNode {
	n.entries = slices.DeleteFunc(n.entries, func(e Entry) bool { return !keep(e) })
	return n
}

func (n *mutableMultiKeyValue) WithoutFilteredEntries(drop func(Entry) bool) KeyValueNode {
	n.entries = slices.DeleteFunc(n.entries, drop)
	return n
}

func (n *mutableMultiKeyValue) WithReplacements(match func(Entry) bool, transform func(Entry) Entry) KeyValueNode {
	for i, e := range n.entries {
		if match(e) {
			n.entries[i] = transform(e)
		}
	}
	return n
}

func (n *mutableMultiKeyValue) WithAttributes(attrs KeyValueNode) Node {
	n.attrs = attrs
	return n
}

func (n *mutableMultiKeyValue) WithAttribute(key, value Node) Node {
	n.attrs = n.attrs.WithElement(key, value)
	return n
}

func (n *mutableMultiKeyValue) WithoutAttribute(key Node) Node {
	n.attrs = n.attrs.WithoutKey(key)
	return n
}

func (n *mutableMultiKeyValue) WithoutAttributes() Node {
	n.attrs = n.attrs.WithoutContent()
	return n
}
