package node

import (
	"errors"
	"testing"
)

func TestAs(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		cast func(Node) bool
		node Node
	}{
		{
			name: "flag as flag",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[FlagNode](n); return ok },
			node: Flag(true),
		},
		{
			name: "flag as scalar",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[ScalarNode](n); return ok },
			node: Flag(true),
		},
		{
			name: "flag as text",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[TextNode](n); return ok },
			node: Flag(true),
		},
		{
			name: "null as scalar",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[ScalarNode](n); return ok },
			node: Null(),
		},
		{
			name: "sequence as indexed",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[IndexedNode](n); return ok },
			node: Sequence(Numeric(1)),
		},
		{
			name: "sequence as ordered",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[OrderedNode](n); return ok },
			node: MutableSequence(),
		},
		{
			name: "bag as group",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[GroupNode](n); return ok },
			node: MutableBag(),
		},
		{
			name: "bag as indexed",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[IndexedNode](n); return ok },
			node: MutableBag(),
		},
		{
			name: "bag as ordered",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[OrderedNode](n); return ok },
			node: MutableBag(),
		},
		{
			name: "keyvalue as keyvalue",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[KeyValueNode](n); return ok },
			node: KeyValue(),
		},
		{
			name: "keyvalue as multi",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[MultiKeyValueNode](n); return ok },
			node: KeyValue(),
		},
		{
			name: "multi as keyvalue",
			ok:   true,
			cast: func(n Node) bool { _, ok := As[KeyValueNode](n); return ok },
			node: MutableMultiKeyValue(),
		},
		{
			name: "ignorant group as counted",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[CountedNode](n); return ok },
			node: IgnorantGroup(),
		},
		{
			name: "missing as container",
			ok:   false,
			cast: func(n Node) bool { _, ok := As[ContainerNode](n); return ok },
			node: Missing(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cast(tt.node); got != tt.ok {
				t.Errorf("cast ok = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestTo(t *testing.T) {
	seq, err := To[SequenceNode](Sequence(Text("a")))
	if err != nil {
		t.Fatalf("To[SequenceNode]: %v", err)
	}
	if seq.Count() != 1 {
		t.Errorf("Count() = %d, want 1", seq.Count())
	}

	if _, err := To[TextNode](Flag(true)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("To[TextNode](flag) error = %v, want ErrTypeMismatch", err)
	}
	if _, err := To[FlagNode](nil); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("To[FlagNode](nil) error = %v, want ErrTypeMismatch", err)
	}
}

func TestScalarValue(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected any
	}{
		{"flag", Flag(true), true},
		{"numeric", Numeric(3.5), 3.5},
		{"text", Text("hi"), "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := To[ScalarNode](tt.node)
			if err != nil {
				t.Fatalf("To[ScalarNode]: %v", err)
			}
			if got := s.ScalarValue(); got != tt.expected {
				t.Errorf("ScalarValue() = %v, want %v", got, tt.expected)
			}
		})
	}
}
