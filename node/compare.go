package node

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes rank by kind first (Null < Flag < Numeric < Text < Group <
// KeyValue < Special), then by value. Groups compare elementwise then
// by length; key-value nodes compare entry-by-entry with entries
// ordered by key, so insertion order does not matter. Attributes
// break ties last; the many renditions of no-attributes (Ignorant, a
// drained container) all compare equal. Special nodes carry no
// payload the comparison could see, so they only equal themselves by
// identity and otherwise tie.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	if c := compareValue(a, b); c != 0 {
		return c
	}
	return compareAttrs(a, b)
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Null < Flag < Numeric < Text < Group < KeyValue < Special
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case FlagKind:
		return 1
	case NumericKind:
		return 2
	case TextKind:
		return 3
	case GroupKind:
		return 4
	case KeyValueKind:
		return 5
	case SpecialKind:
		return 6
	}
	return 100
}

func compareValue(a, b Node) int {
	switch a.Kind() {
	case NullKind, SpecialKind:
		return 0
	case FlagKind:
		return compareFlags(a, b)
	case NumericKind:
		return compareNumerics(a, b)
	case TextKind:
		return compareTexts(a, b)
	case GroupKind:
		return compareGroups(a, b)
	case KeyValueKind:
		return compareKeyValues(a, b)
	}
	return 0
}

func compareFlags(a, b Node) int {
	fa, aok := As[FlagNode](a)
	fb, bok := As[FlagNode](b)
	if c := compareViews(aok, bok); c != 0 || !aok {
		return c
	}
	if fa.Value() == fb.Value() {
		return 0
	}
	if !fa.Value() {
		return -1
	}
	return 1
}

func compareNumerics(a, b Node) int {
	na, aok := As[NumericNode](a)
	nb, bok := As[NumericNode](b)
	if c := compareViews(aok, bok); c != 0 || !aok {
		return c
	}
	return cmp.Compare(na.Value(), nb.Value())
}

func compareTexts(a, b Node) int {
	ta, aok := As[TextNode](a)
	tb, bok := As[TextNode](b)
	if c := compareViews(aok, bok); c != 0 || !aok {
		return c
	}
	return strings.Compare(ta.Value(), tb.Value())
}

func compareGroups(a, b Node) int {
	ga, aok := As[GroupNode](a)
	gb, bok := As[GroupNode](b)
	if c := compareViews(aok, bok); c != 0 || !aok {
		return c
	}
	ca := ga.Children()
	cb := gb.Children()
	for i := 0; i < min(len(ca), len(cb)); i++ {
		if c := Compare(ca[i], cb[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ca), len(cb))
}

func compareKeyValues(a, b Node) int {
	ka, aok := As[KeyValueNode](a)
	kb, bok := As[KeyValueNode](b)
	if c := compareViews(aok, bok); c != 0 || !aok {
		return c
	}
	ea := sortedEntries(ka)
	eb := sortedEntries(kb)
	for i := 0; i < min(len(ea), len(eb)); i++ {
		if c := Compare(ea[i].Key, eb[i].Key); c != 0 {
			return c
		}
		if c := Compare(ea[i].Value, eb[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ea), len(eb))
}

func sortedEntries(n KeyValueNode) []Entry {
	entries := n.Content()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return Compare(a.Key, b.Key)
	})
	return entries
}

// compareViews orders nodes whose kind promises a capability they do
// not actually implement below conforming ones, keeping Compare total
// over foreign implementations.
func compareViews(aok, bok bool) int {
	switch {
	case aok == bok:
		return 0
	case !aok:
		return -1
	default:
		return 1
	}
}

func compareAttrs(a, b Node) int {
	aa := a.Attributes()
	ab := b.Attributes()
	emptyA := aa == nil || aa.Empty()
	emptyB := ab == nil || ab.Empty()
	switch {
	case emptyA && emptyB:
		return 0
	case emptyA:
		return -1
	case emptyB:
		return 1
	}
	return Compare(aa, ab)
}
