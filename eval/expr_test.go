package eval

import (
	"testing"

	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/path"
	"github.com/interlayer-space/elementary-go/treeop"
)

func exprContext() treeop.Context {
	root := node.KeyValue(
		node.Entry{Key: node.Text("a"), Value: node.KeyValue(
			node.Entry{Key: node.Text("b"), Value: node.Numeric(21)},
		)},
	)
	inner, _ := treeop.Locator{Probe: treeop.ChildProbe}.Find(root, path.MustParse("$.a"))
	return treeop.NewContext(root, inner, path.MustParse("$.a"))
}

func TestExpr(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected node.Node
	}{
		{"arithmetic over the cursor", "node.b * 2", node.Numeric(42)},
		{"root access", "root.a.b + 1", node.Numeric(22)},
		{"location", "location", node.Text("$.a")},
		{"construction", `{"k": node.b}`, node.KeyValue(node.Entry{Key: node.Text("k"), Value: node.Numeric(21)})},
		{"lookup hit", `lookup("$.a.b")`, node.Numeric(21)},
		{"lookup miss", `lookup("$.ghost")`, node.Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Expr("probe", tt.src)
			if err != nil {
				t.Fatalf("Expr: %v", err)
			}
			r := NewResolver()
			if err := r.Register(d); err != nil {
				t.Fatalf("Register: %v", err)
			}
			got, err := r.Resolve("probe", exprContext())
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !node.Equal(got, tt.expected) {
				t.Errorf("Resolve = %s, want %s", node.Dump(got), node.Dump(tt.expected))
			}
		})
	}
}

func TestExprGetenv(t *testing.T) {
	t.Setenv("ELEMENTARY_TEST_VALUE", "from env")
	d, err := Expr("env", `getenv("ELEMENTARY_TEST_VALUE")`)
	if err != nil {
		t.Fatalf("Expr: %v", err)
	}
	r := NewResolver()
	r.Register(d)
	got, err := r.Resolve("env", exprContext())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !node.Equal(got, node.Text("from env")) {
		t.Errorf("Resolve = %s", node.Dump(got))
	}
}

func TestExprCompileError(t *testing.T) {
	if _, err := Expr("bad", "1 +"); err == nil {
		t.Error("a malformed expression compiled")
	}
}

func TestExprRunError(t *testing.T) {
	d, err := Expr("deep", "node.ghost.deep")
	if err != nil {
		t.Fatalf("Expr: %v", err)
	}
	r := NewResolver()
	r.Register(d)
	ctx := treeop.RootContext(node.KeyValue(node.Entry{Key: node.Text("k"), Value: node.Numeric(0)}))
	if _, err := r.Resolve("deep", ctx); err == nil {
		t.Error("a runtime failure resolved")
	}
}
