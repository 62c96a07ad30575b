package treeop

import (
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/path"
)

// Condition is a pure predicate over the evaluation context.
type Condition interface {
	Holds(ctx Context) bool
}

// ConditionFunc adapts a plain function into a Condition.
type ConditionFunc func(Context) bool

func (f ConditionFunc) Holds(ctx Context) bool { return f(ctx) }

// Always returns the condition that holds for every context.
func Always() Condition {
	return alwaysCond{}
}

type alwaysCond struct{}

func (alwaysCond) Holds(Context) bool { return true }

// Never returns the condition that holds for no context.
func Never() Condition {
	return neverCond{}
}

type neverCond struct{}

func (neverCond) Holds(Context) bool { return false }

// Not negates a condition.
func Not(c Condition) Condition {
	return notCond{c: c}
}

type notCond struct {
	c Condition
}

func (n notCond) Holds(ctx Context) bool { return !n.c.Holds(ctx) }

// KindIs holds when the cursor node has the given kind.
func KindIs(k node.Kind) Condition {
	return kindCond(k)
}

type kindCond node.Kind

func (k kindCond) Holds(ctx Context) bool {
	return node.Is(ctx.Node, node.Kind(k))
}

// NodeEquals holds when the cursor node equals n under node.Equal.
func NodeEquals(n node.Node) Condition {
	return equalsCond{n: n}
}

type equalsCond struct {
	n node.Node
}

func (e equalsCond) Holds(ctx Context) bool {
	return node.Equal(ctx.Node, e.n)
}

// HasPath holds when at resolves to a present node. Absolute paths
// walk from the context root, relative ones from the cursor node. A
// nil probe means the stock ChildProbe.
func HasPath(at path.Path, probe Probe) Condition {
	if probe == nil {
		probe = ChildProbe
	}
	return hasPathCond{at: at, locator: Locator{Probe: probe}}
}

type hasPathCond struct {
	at      path.Path
	locator Locator
}

func (h hasPathCond) Holds(ctx Context) bool {
	start := ctx.Node
	if h.at.Absolute {
		start = ctx.Root
	}
	n, ok := h.locator.Find(start, h.at)
	return ok && !node.IsMissing(n)
}
