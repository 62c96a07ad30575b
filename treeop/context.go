package treeop

import (
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/path"
)

// Context carries the state an operation may consult: the tree root,
// the node under the cursor and the cursor's location. Contexts are
// values; the With methods return an adjusted copy and never touch the
// receiver, so a context handed to an operation is safe to reuse after
// it returns.
type Context struct {
	Root     node.Node
	Node     node.Node
	Location path.Path
}

// NewContext returns a context with the cursor on current at location
// at inside root.
func NewContext(root, current node.Node, at path.Path) Context {
	return Context{Root: root, Node: current, Location: at}
}

// RootContext returns a context with the cursor on the root itself.
func RootContext(root node.Node) Context {
	return Context{Root: root, Node: root, Location: path.Root()}
}

// WithRoot returns a copy of the context with the root replaced.
func (c Context) WithRoot(root node.Node) Context {
	c.Root = root
	return c
}

// WithNode returns a copy of the context with the cursor node
// replaced.
func (c Context) WithNode(n node.Node) Context {
	c.Node = n
	return c
}

// WithLocation returns a copy of the context with the cursor location
// replaced.
func (c Context) WithLocation(at path.Path) Context {
	c.Location = at
	return c
}
