package treeop

import (
	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
)

// Operation rewrites the node under the context cursor. Apply returns
// the replacement; returning ctx.Node means "leave it alone". An
// operation must not modify the context, though it may return a
// mutable node it side-effected.
type Operation interface {
	Apply(ctx Context) node.Node
}

// OperationFunc adapts a plain function into an Operation.
type OperationFunc func(Context) node.Node

func (f OperationFunc) Apply(ctx Context) node.Node { return f(ctx) }

// Identity returns the operation that changes nothing.
func Identity() Operation {
	return identityOp{}
}

type identityOp struct{}

func (identityOp) Apply(ctx Context) node.Node {
	return ctx.Node
}

// Immediate returns the operation that replaces any node with n.
func Immediate(n node.Node) Operation {
	return immediateOp{n: n}
}

type immediateOp struct {
	n node.Node
}

func (o immediateOp) Apply(ctx Context) node.Node {
	if debug.Op() {
		debug.Logf("immediate op at %s\n", ctx.Location)
	}
	return o.n
}

// Transform returns the operation applying fn to the cursor node.
func Transform(fn func(node.Node) node.Node) Operation {
	return transformOp{fn: fn}
}

type transformOp struct {
	fn func(node.Node) node.Node
}

func (o transformOp) Apply(ctx Context) node.Node {
	if debug.Op() {
		debug.Logf("transform op at %s\n", ctx.Location)
	}
	return o.fn(ctx.Node)
}

// Delete returns the operation that replaces any node with the
// missing sentinel, the model's way of marking a position for
// removal.
func Delete() Operation {
	return deleteOp{}
}

type deleteOp struct{}

func (deleteOp) Apply(ctx Context) node.Node {
	if debug.Op() {
		debug.Logf("delete op at %s\n", ctx.Location)
	}
	return node.Missing()
}

// Nullify returns the operation that replaces any node with null.
func Nullify() Operation {
	return nullifyOp{}
}

type nullifyOp struct{}

func (nullifyOp) Apply(ctx Context) node.Node {
	if debug.Op() {
		debug.Logf("nullify op at %s\n", ctx.Location)
	}
	return node.Null()
}
