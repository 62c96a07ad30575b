package node

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{NullKind, "Null"},
		{FlagKind, "Flag"},
		{NumericKind, "Numeric"},
		{TextKind, "Text"},
		{GroupKind, "Group"},
		{KeyValueKind, "KeyValue"},
		{SpecialKind, "Special"},
		{Kind(42), "<unknown kind>"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.expected)
		}
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%s: MarshalText: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: UnmarshalText: %v", k, err)
		}
		if back != k {
			t.Errorf("round trip %s -> %q -> %s", k, d, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Frob")); err == nil {
		t.Error("UnmarshalText accepted unknown kind")
	}
}

func TestKindCategories(t *testing.T) {
	tests := []struct {
		kind      Kind
		scalar    bool
		container bool
	}{
		{NullKind, false, false},
		{FlagKind, true, false},
		{NumericKind, true, false},
		{TextKind, true, false},
		{GroupKind, false, true},
		{KeyValueKind, false, true},
		{SpecialKind, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsScalar(); got != tt.scalar {
				t.Errorf("IsScalar() = %v, want %v", got, tt.scalar)
			}
			if got := tt.kind.IsContainer(); got != tt.container {
				t.Errorf("IsContainer() = %v, want %v", got, tt.container)
			}
		})
	}
}

func TestNodeKinds(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected Kind
	}{
		{"immutable null", Null(), NullKind},
		{"mutable null", MutableNull(), NullKind},
		{"flag", Flag(true), FlagKind},
		{"numeric", Numeric(1), NumericKind},
		{"text", Text("x"), TextKind},
		{"sequence", Sequence(), GroupKind},
		{"bag", MutableBag(), GroupKind},
		{"ignorant group", IgnorantGroup(), GroupKind},
		{"keyvalue", KeyValue(), KeyValueKind},
		{"multi keyvalue", MutableMultiKeyValue(), KeyValueKind},
		{"ignorant", Ignorant(), KeyValueKind},
		{"missing", Missing(), SpecialKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Kind(); got != tt.expected {
				t.Errorf("Kind() = %s, want %s", got, tt.expected)
			}
			if !Is(tt.node, tt.expected) {
				t.Errorf("Is(n, %s) = false", tt.expected)
			}
		})
	}
}
