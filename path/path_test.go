package path

import "testing"

func TestSegmentString(t *testing.T) {
	tests := []struct {
		name     string
		segment  Segment
		expected string
	}{
		{"field", Field("a"), "a"},
		{"spaced field", Field("spaced out"), "'spaced out'"},
		{"empty field", Field(""), "''"},
		{"dotted field", Field("a.b"), "'a.b'"},
		{"quoted field", Field("it's"), `'it\'s'`},
		{"index", Index(3), "[3]"},
		{"zero index", Index(0), "[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.segment.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSegmentKind(t *testing.T) {
	f := Field("a")
	if !f.IsField() || f.IsIndex() {
		t.Error("Field segment misreports its kind")
	}
	i := Index(0)
	if !i.IsIndex() || i.IsField() {
		t.Error("Index segment misreports its kind")
	}
}

func TestSegmentEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Segment
		expected bool
	}{
		{"same field", Field("a"), Field("a"), true},
		{"different fields", Field("a"), Field("b"), false},
		{"same index", Index(1), Index(1), true},
		{"different indexes", Index(1), Index(2), false},
		{"field vs index", Field("1"), Index(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected string
	}{
		{"root", Root(), "$"},
		{"empty relative", Relative(), ""},
		{"absolute chain", Root(Field("a"), Index(0), Field("b")), "$.a[0].b"},
		{"relative chain", Relative(Field("a"), Field("b")), "a.b"},
		{"relative index first", Relative(Index(2), Field("x")), "[2].x"},
		{"quoted", Root(Field("spaced out")), "$.'spaced out'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPathChildParent(t *testing.T) {
	p := Root(Field("a"))
	child := p.Child(Index(0))
	if child.String() != "$.a[0]" {
		t.Errorf("Child() = %q", child.String())
	}
	if p.Len() != 1 {
		t.Error("Child modified the receiver")
	}
	if !child.Parent().Equal(p) {
		t.Errorf("Parent() = %q", child.Parent().String())
	}
	if !Root().Parent().Equal(Root()) {
		t.Error("parent of the root is not the root")
	}
}

func TestPathChildDoesNotShareStorage(t *testing.T) {
	base := Root(Field("a"))
	one := base.Child(Field("b"))
	two := base.Child(Field("c"))
	if one.Segments[1].Equal(two.Segments[1]) {
		t.Errorf("children share storage: %q vs %q", one, two)
	}
}

func TestPathEqual(t *testing.T) {
	if !Root(Field("a")).Equal(Root(Field("a"))) {
		t.Error("equal paths are not Equal")
	}
	if Root(Field("a")).Equal(Relative(Field("a"))) {
		t.Error("absolute equals relative")
	}
	if Root(Field("a")).Equal(Root(Field("a"), Index(0))) {
		t.Error("prefix equals the longer path")
	}
}
