package node

import (
	"errors"
	"testing"
)

var sequenceFlavors = []struct {
	name    string
	mutable bool
	build   func(children ...Node) SequenceNode
}{
	{"immutable", false, Sequence},
	{"mutable", true, MutableSequence},
}

func TestSequenceAccess(t *testing.T) {
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Text("a"), Text("b"), Text("c"))
			if n.Empty() || n.Count() != 3 {
				t.Fatalf("Count() = %d, want 3", n.Count())
			}
			got, err := n.Get(1)
			if err != nil {
				t.Fatalf("Get(1): %v", err)
			}
			if !Equal(got, Text("b")) {
				t.Errorf("Get(1) = %s", Dump(got))
			}
			for _, index := range []int64{-1, 3} {
				if _, err := n.Get(index); !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("Get(%d) error = %v, want ErrOutOfBounds", index, err)
				}
				if n.HasIndex(index) {
					t.Errorf("HasIndex(%d) = true", index)
				}
			}
			if !n.HasIndex(0) || !n.HasIndex(2) {
				t.Error("HasIndex rejected a valid index")
			}
		})
	}
}

func TestSequenceSet(t *testing.T) {
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Numeric(1), Numeric(2))
			m, err := n.Set(0, Numeric(9))
			if err != nil {
				t.Fatalf("Set(0): %v", err)
			}
			if got, _ := m.Get(0); !Equal(got, Numeric(9)) {
				t.Errorf("after Set, Get(0) = %s", Dump(got))
			}
			orig, _ := n.Get(0)
			if flavor.mutable {
				if m != IndexedNode(n) {
					t.Error("mutable Set returned a new instance")
				}
			} else {
				if m == IndexedNode(n) {
					t.Error("immutable Set returned the receiver")
				}
				if !Equal(orig, Numeric(1)) {
					t.Errorf("immutable Set altered the original: %s", Dump(orig))
				}
			}
			if _, err := n.Set(5, Numeric(0)); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Set(5) error = %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestSequenceDrop(t *testing.T) {
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Text("a"), Text("b"), Text("c"))
			m, err := n.Drop(1)
			if err != nil {
				t.Fatalf("Drop(1): %v", err)
			}
			if m.Count() != 2 {
				t.Errorf("Count() = %d, want 2", m.Count())
			}
			if got, _ := m.Get(1); !Equal(got, Text("c")) {
				t.Errorf("Get(1) after drop = %s", Dump(got))
			}
			if _, err := n.Drop(-1); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Drop(-1) error = %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestSequenceEdits(t *testing.T) {
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Text("a"))
			n = n.WithElement(Text("b")).(SequenceNode)
			n = n.WithElements(Text("c"), Text("a")).(SequenceNode)
			if n.Count() != 4 {
				t.Fatalf("Count() = %d, want 4", n.Count())
			}

			// Removal drops every occurrence, not only the first.
			trimmed := n.WithoutElement(Text("a")).(SequenceNode)
			if trimmed.Count() != 2 {
				t.Errorf("Count() = %d, want 2", trimmed.Count())
			}
			for _, child := range trimmed.Children() {
				if Equal(child, Text("a")) {
					t.Error("WithoutElement left an occurrence behind")
				}
			}

			replaced := trimmed.WithContent(Numeric(1), Numeric(2)).(SequenceNode)
			if replaced.Count() != 2 {
				t.Errorf("after WithContent, Count() = %d", replaced.Count())
			}
			if got, _ := replaced.Get(0); !Equal(got, Numeric(1)) {
				t.Errorf("after WithContent, Get(0) = %s", Dump(got))
			}
			if cleared := replaced.WithoutContent(); !cleared.(SequenceNode).Empty() {
				t.Error("WithoutContent left children behind")
			}
		})
	}
}

func TestSequenceFilters(t *testing.T) {
	even := func(n Node) bool {
		num, ok := As[NumericNode](n)
		return ok && int64(num.Value())%2 == 0
	}
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Numeric(1), Numeric(2), Numeric(3), Numeric(4))
			kept := n.WithSelectedElements(even).(SequenceNode)
			if kept.Count() != 2 {
				t.Errorf("WithSelectedElements kept %d", kept.Count())
			}

			n = flavor.build(Numeric(1), Numeric(2), Numeric(3), Numeric(4))
			dropped := n.WithoutFilteredElements(even).(SequenceNode)
			if dropped.Count() != 2 {
				t.Errorf("WithoutFilteredElements kept %d", dropped.Count())
			}
			if got, _ := dropped.Get(0); !Equal(got, Numeric(1)) {
				t.Errorf("Get(0) = %s", Dump(got))
			}
		})
	}
}

func TestSequenceReplacements(t *testing.T) {
	isNumeric := func(n Node) bool { return Is(n, NumericKind) }
	double := func(n Node) Node {
		num, _ := As[NumericNode](n)
		return Numeric(num.Value() * 2)
	}
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Numeric(1), Text("x"), Numeric(3))
			m := n.WithReplacements(isNumeric, double).(SequenceNode)
			expected := []Node{Numeric(2), Text("x"), Numeric(6)}
			for i, want := range expected {
				if got, _ := m.Get(int64(i)); !Equal(got, want) {
					t.Errorf("Get(%d) = %s, want %s", i, Dump(got), Dump(want))
				}
			}
		})
	}
}

func TestSequenceSorted(t *testing.T) {
	byValue := func(a, b Node) int { return Compare(a, b) }
	for _, flavor := range sequenceFlavors {
		t.Run(flavor.name, func(t *testing.T) {
			n := flavor.build(Numeric(3), Numeric(1), Numeric(2))
			sorted, ok := As[SequenceNode](n.Sorted(byValue))
			if !ok {
				t.Fatal("Sorted did not yield a sequence")
			}
			for i, want := range []float64{1, 2, 3} {
				got, _ := sorted.Get(int64(i))
				if num, _ := As[NumericNode](got); num.Value() != want {
					t.Errorf("Get(%d) = %s, want %v", i, Dump(got), want)
				}
			}
			if flavor.mutable {
				if first, _ := n.Get(0); !Equal(first, Numeric(1)) {
					t.Error("mutable Sorted did not reorder in place")
				}
			} else {
				if first, _ := n.Get(0); !Equal(first, Numeric(3)) {
					t.Error("immutable Sorted reordered the original")
				}
			}
		})
	}
}

func TestSequenceChildrenSnapshot(t *testing.T) {
	n := MutableSequence(Text("a"), Text("b"))
	children := n.Children()
	children[0] = Text("z")
	if got, _ := n.Get(0); !Equal(got, Text("a")) {
		t.Error("Children() exposed internal storage")
	}
}

func TestSequenceImmutableNoops(t *testing.T) {
	n := Sequence(Text("a"))
	if m := n.WithoutElement(Text("zzz")); m != Node(n) {
		t.Error("removing an absent element built a new node")
	}
	if Sequence() != Sequence() {
		t.Error("empty immutable sequence is not shared")
	}
}
