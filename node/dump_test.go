package node

import "testing"

func TestDump(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"nil", nil, "<nil>"},
		{"null", Null(), "null"},
		{"flag", Flag(true), "true"},
		{"numeric", Numeric(2.5), "2.5"},
		{"whole numeric", Numeric(4), "4"},
		{"text", Text("hi\nthere"), `"hi\nthere"`},
		{"missing", Missing(), "<missing>"},
		{"empty sequence", Sequence(), "[]"},
		{"empty keyvalue", KeyValue(), "{}"},
		{
			"sequence",
			Sequence(Numeric(1), Text("x")),
			"[\n  1\n  \"x\"\n]",
		},
		{
			"keyvalue",
			KeyValue(pair("a", Numeric(1))),
			"{\n  \"a\": 1\n}",
		},
		{
			"nested",
			KeyValue(pair("list", Sequence(Null()))),
			"{\n  \"list\": [\n    null\n  ]\n}",
		},
		{
			"attributes",
			FlagWithAttrs(true, KeyValue(pair("origin", Text("manual")))),
			"true @{\n  \"origin\": \"manual\"\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.node); got != tt.expected {
				t.Errorf("Dump() = %q, want %q", got, tt.expected)
			}
		})
	}
}
