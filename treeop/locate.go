package treeop

import (
	"slices"

	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/path"
)

// Probe advances one step from n along seg, returning the reached node
// or nil when the step cannot be taken. Probes own all interpretation
// of segments; the locator itself never looks inside one.
type Probe func(n node.Node, seg path.Segment) node.Node

// Locator walks paths through a tree, one probe call per segment.
// The zero value has no probe and cannot advance at all.
type Locator struct {
	Probe Probe
}

// Result is the outcome of a walk. Walked holds the segments the
// probe accepted, Remainder the ones it never reached, and Node the
// last node the walk stood on. The three stay consistent: Node is
// where following Walked from the start leads.
type Result struct {
	Walked    []path.Segment
	Remainder []path.Segment
	Node      node.Node
}

// Successful reports whether the walk consumed the whole path.
func (r Result) Successful() bool {
	return len(r.Remainder) == 0
}

// Locate walks at from root. Locating never fails outright: a step
// the probe refuses ends the walk, leaving the refused segment and
// everything after it in the remainder. An empty path succeeds
// trivially with the cursor still on root.
func (l Locator) Locate(root node.Node, at path.Path) Result {
	res := Result{Node: root, Remainder: slices.Clone(at.Segments)}
	if l.Probe == nil {
		return res
	}
	for len(res.Remainder) > 0 {
		seg := res.Remainder[0]
		next := l.Probe(res.Node, seg)
		if next == nil {
			if debug.Locate() {
				debug.Logf("locate stopped before %s, %d of %d segments left\n",
					seg, len(res.Remainder), at.Len())
			}
			return res
		}
		res.Walked = append(res.Walked, seg)
		res.Remainder = res.Remainder[1:]
		res.Node = next
	}
	if debug.Locate() {
		debug.Logf("locate reached %s\n", at)
	}
	return res
}

// Find is the filtered walk: the located node when the whole path
// resolves, or false. It is Locate for callers that do not care where
// a partial walk ended.
func (l Locator) Find(root node.Node, at path.Path) (node.Node, bool) {
	res := l.Locate(root, at)
	if !res.Successful() {
		return nil, false
	}
	return res.Node, true
}

// ChildProbe is the stock probe: field segments step into a key-value
// node by text key, index segments into an indexed group by position.
func ChildProbe(n node.Node, seg path.Segment) node.Node {
	switch {
	case seg.IsField():
		kv, ok := node.As[node.KeyValueNode](n)
		if !ok {
			return nil
		}
		return kv.RequestValue(node.Text(*seg.Field))
	case seg.IsIndex():
		indexed, ok := node.As[node.IndexedNode](n)
		if !ok {
			return nil
		}
		child, err := indexed.Get(*seg.Index)
		if err != nil {
			return nil
		}
		return child
	}
	return nil
}
