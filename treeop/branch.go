package treeop

import (
	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
)

// Conditional gates op behind when: the operation applies only while
// the condition holds, and otherwise leaves the node untouched.
func Conditional(op Operation, when Condition) Operation {
	return conditionalOp{op: op, when: when}
}

type conditionalOp struct {
	op   Operation
	when Condition
}

func (o conditionalOp) Apply(ctx Context) node.Node {
	if !o.when.Holds(ctx) {
		if debug.Op() {
			debug.Logf("conditional op skipped at %s\n", ctx.Location)
		}
		return ctx.Node
	}
	return o.op.Apply(ctx)
}

// Branching picks between two operations: onHold applies while when
// holds, onFail otherwise. A nil arm acts as the identity.
func Branching(when Condition, onHold, onFail Operation) Operation {
	return branchingOp{when: when, onHold: onHold, onFail: onFail}
}

type branchingOp struct {
	when           Condition
	onHold, onFail Operation
}

func (o branchingOp) Apply(ctx Context) node.Node {
	arm := o.onFail
	if o.when.Holds(ctx) {
		arm = o.onHold
	}
	if arm == nil {
		return ctx.Node
	}
	return arm.Apply(ctx)
}

// Branch is one arm of a Switch.
type Branch struct {
	When Condition
	Then Operation
}

// Switch tries the branches in order and applies the first whose
// condition holds; later branches are not consulted. With no match the
// fallback applies, and a nil fallback acts as the identity.
func Switch(branches []Branch, fallback Operation) Operation {
	return switchOp{branches: branches, fallback: fallback}
}

type switchOp struct {
	branches []Branch
	fallback Operation
}

func (o switchOp) Apply(ctx Context) node.Node {
	for i, b := range o.branches {
		if b.When.Holds(ctx) {
			if debug.Op() {
				debug.Logf("switch op took branch %d at %s\n", i, ctx.Location)
			}
			return b.Then.Apply(ctx)
		}
	}
	if debug.Op() {
		debug.Logf("switch op fell through at %s\n", ctx.Location)
	}
	if o.fallback == nil {
		return ctx.Node
	}
	return o.fallback.Apply(ctx)
}

// SequenceOf chains operations: each applies to the node the previous
// one produced, in a context rebuilt around that node with the root
// and location unchanged. An empty sequence is the identity.
func SequenceOf(ops ...Operation) Operation {
	return sequenceOp(ops)
}

type sequenceOp []Operation

func (ops sequenceOp) Apply(ctx Context) node.Node {
	cur := ctx.Node
	for _, op := range ops {
		cur = op.Apply(ctx.WithNode(cur))
	}
	return cur
}
