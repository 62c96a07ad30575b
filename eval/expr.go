package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/path"
	"github.com/interlayer-space/elementary-go/translate"
	"github.com/interlayer-space/elementary-go/treeop"
)

// Expr compiles src into a directive evaluating an expr-lang
// expression. Compilation happens here, once; a bad expression never
// reaches a resolver. At resolution the program sees
//
//	root     - the context root as a plain any tree
//	node     - the cursor node the same way
//	location - the cursor location as text
//
// plus lookup(path) resolving a path against the root and
// getenv(name) reading the process environment. The program's result
// decodes back through the any-tree translation.
func Expr(name, src string) (Directive, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return exprDirective{name: name, prg: prg}, nil
}

type exprDirective struct {
	name string
	prg  *vm.Program
}

func (d exprDirective) Name() string { return d.name }

func (d exprDirective) Resolve(ctx treeop.Context, r *Resolver) (node.Node, error) {
	if debug.Eval() {
		debug.Logf("expr directive %s at %s\n", d.name, ctx.Location)
	}
	tr := translate.AnyTree{}
	root, err := tr.Encode(ctx.Root)
	if err != nil {
		return nil, err
	}
	current, err := tr.Encode(ctx.Node)
	if err != nil {
		return nil, err
	}
	env := map[string]any{
		"root":     root,
		"node":     current,
		"location": ctx.Location.String(),
		"lookup":   lookupFunc(ctx),
	}
	res, err := expr.Run(d.prg, env)
	if err != nil {
		return nil, err
	}
	return tr.Decode(res)
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// lookup resolves a path against the context root and hands back the
// reached subtree as an any value, or nil when the walk stops short.
func lookupFunc(ctx treeop.Context) func(string) any {
	locator := treeop.Locator{Probe: treeop.ChildProbe}
	return func(p string) any {
		parsed, err := path.Parse(p)
		if err != nil {
			return nil
		}
		found, ok := locator.Find(ctx.Root, parsed)
		if !ok {
			return nil
		}
		v, err := translate.AnyTree{}.Encode(found)
		if err != nil {
			return nil
		}
		return v
	}
}
