package eval

import (
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/treeop"
)

// Constant returns a directive that always resolves to n.
func Constant(name string, n node.Node) Directive {
	return constantDirective{name: name, n: n}
}

type constantDirective struct {
	name string
	n    node.Node
}

func (d constantDirective) Name() string { return d.name }

func (d constantDirective) Resolve(treeop.Context, *Resolver) (node.Node, error) {
	return d.n, nil
}

// Func wraps a plain function as a directive.
func Func(name string, fn func(ctx treeop.Context, r *Resolver) (node.Node, error)) Directive {
	return funcDirective{name: name, fn: fn}
}

type funcDirective struct {
	name string
	fn   func(treeop.Context, *Resolver) (node.Node, error)
}

func (d funcDirective) Name() string { return d.name }

func (d funcDirective) Resolve(ctx treeop.Context, r *Resolver) (node.Node, error) {
	return d.fn(ctx, r)
}

// Ref returns a directive that resolves to whatever target resolves
// to. Chains of refs walk transitively; a ref that reaches back to a
// name already resolving surfaces the resolver's cycle error.
func Ref(name, target string) Directive {
	return refDirective{name: name, target: target}
}

type refDirective struct {
	name   string
	target string
}

func (d refDirective) Name() string { return d.name }

func (d refDirective) Resolve(ctx treeop.Context, r *Resolver) (node.Node, error) {
	return r.Resolve(d.target, ctx)
}
