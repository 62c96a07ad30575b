package node

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal nodes hash equal across calls within a
// process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal:
// equal nodes hash to the same value within a process. It panics if n
// is nil.
func Hash(n Node) uint64 {
	if n == nil {
		panic("node: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(rank(n.Kind())))

	switch n.Kind() {
	case NullKind, SpecialKind:
	case FlagKind:
		if f, ok := As[FlagNode](n); ok {
			if f.Value() {
				h.WriteByte(1)
			} else {
				h.WriteByte(0)
			}
		}
	case NumericKind:
		if num, ok := As[NumericNode](n); ok {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(num.Value()))
			h.Write(b[:])
		}
	case TextKind:
		if t, ok := As[TextNode](n); ok {
			h.WriteString(t.Value())
		}
	case GroupKind:
		if g, ok := As[GroupNode](n); ok {
			var b [8]byte
			for _, c := range g.Children() {
				binary.LittleEndian.PutUint64(b[:], Hash(c))
				h.Write(b[:])
			}
		}
	case KeyValueKind:
		if kv, ok := As[KeyValueNode](n); ok {
			// Entries hash in key order so insertion order does not
			// leak into the result.
			var b [8]byte
			for _, e := range sortedEntries(kv) {
				binary.LittleEndian.PutUint64(b[:], Hash(e.Key))
				h.Write(b[:])
				binary.LittleEndian.PutUint64(b[:], Hash(e.Value))
				h.Write(b[:])
			}
		}
	}

	if attrs := n.Attributes(); attrs != nil && !attrs.Empty() {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], Hash(attrs))
		h.Write(b[:])
	}
	return h.Sum64()
}
