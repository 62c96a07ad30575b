package node

import "testing"

func TestBag(t *testing.T) {
	n := MutableBag(Text("a"), Text("b"), Text("a"))
	counted, ok := As[CountedNode](n)
	if !ok {
		t.Fatal("bag does not report a count")
	}
	if counted.Count() != 3 {
		t.Errorf("Count() = %d, want 3", counted.Count())
	}

	if m := n.WithElement(Text("c")); m != GroupNode(n) {
		t.Error("mutable WithElement returned a new instance")
	}
	n.WithoutElement(Text("a"))
	children := n.Children()
	if len(children) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(children))
	}
	for _, child := range children {
		if Equal(child, Text("a")) {
			t.Error("WithoutElement left an occurrence behind")
		}
	}

	n.WithContent(Numeric(1))
	if len(n.Children()) != 1 {
		t.Error("WithContent did not replace the members")
	}
}
