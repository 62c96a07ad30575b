package treediff

import (
	"strings"
	"testing"

	"github.com/interlayer-space/elementary-go/node"
)

func kv(key string, value node.Node) node.Entry {
	return node.Entry{Key: node.Text(key), Value: value}
}

func TestDiffEqualTrees(t *testing.T) {
	a := node.KeyValue(kv("x", node.Numeric(1)))
	b := node.MutableKeyValue(kv("x", node.MutableNumeric(1)))
	if got := Diff(a, b); got != "" {
		t.Errorf("Diff of equal trees = %q", got)
	}
}

func TestDiffChangedValue(t *testing.T) {
	a := node.KeyValue(kv("x", node.Numeric(1)), kv("y", node.Text("same")))
	b := node.KeyValue(kv("x", node.Numeric(2)), kv("y", node.Text("same")))
	got := Diff(a, b)
	if !strings.Contains(got, `- `+`  "x": 1`) {
		t.Errorf("diff lacks the removed line:\n%s", got)
	}
	if !strings.Contains(got, `+ `+`  "x": 2`) {
		t.Errorf("diff lacks the added line:\n%s", got)
	}
	if !strings.Contains(got, `  `+`  "y": "same"`) {
		t.Errorf("diff lacks the kept line:\n%s", got)
	}
}

func TestDiffScalars(t *testing.T) {
	got := Diff(node.Numeric(1), node.Text("one"))
	if !strings.Contains(got, "- 1\n") || !strings.Contains(got, `+ "one"`) {
		t.Errorf("diff = %q", got)
	}
}

func TestRender(t *testing.T) {
	if got := Render(node.Flag(true)); got != "true\n" {
		t.Errorf("Render = %q", got)
	}
	if got := Render(node.Sequence(node.Null())); got != "[\n  null\n]\n" {
		t.Errorf("Render = %q", got)
	}
}
