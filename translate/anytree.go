package translate

import (
	"fmt"
	"slices"

	"github.com/interlayer-space/elementary-go/node"
)

// AnyTree translates between nodes and plain Go values: map[string]any
// dictionaries, []any groups, bool, float64, string and nil. This is
// the shape json-style decoders produce, so it is the seam most
// external data enters and leaves through.
//
// Encode drops attributes: plain Go trees have nowhere to put them.
// Decode returns immutable, attribute-free nodes and widens every
// integer flavor to float64.
type AnyTree struct{}

var _ Translator[any, node.Node, node.Node] = AnyTree{}

func (a AnyTree) Encode(n node.Node) (any, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot encode a nil node")
	}
	switch n.Kind() {
	case node.NullKind:
		return nil, nil
	case node.FlagKind:
		f, err := node.To[node.FlagNode](n)
		if err != nil {
			return nil, err
		}
		return f.Value(), nil
	case node.NumericKind:
		num, err := node.To[node.NumericNode](n)
		if err != nil {
			return nil, err
		}
		return num.Value(), nil
	case node.TextKind:
		t, err := node.To[node.TextNode](n)
		if err != nil {
			return nil, err
		}
		return t.Value(), nil
	case node.GroupKind:
		return a.encodeGroup(n)
	case node.KeyValueKind:
		return a.encodeKeyValue(n)
	}
	return nil, fmt.Errorf("cannot encode %s node: %w", n.Kind(), node.ErrUnsupported)
}

func (a AnyTree) encodeGroup(n node.Node) (any, error) {
	g, err := node.To[node.GroupNode](n)
	if err != nil {
		return nil, err
	}
	children := g.Children()
	res := make([]any, len(children))
	for i, child := range children {
		res[i], err = a.Encode(child)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (a AnyTree) encodeKeyValue(n node.Node) (any, error) {
	kv, err := node.To[node.KeyValueNode](n)
	if err != nil {
		return nil, err
	}
	entries := kv.Content()
	res := make(map[string]any, len(entries))
	for _, e := range entries {
		t, ok := node.As[node.TextNode](e.Key)
		if !ok {
			return nil, fmt.Errorf("cannot encode %s key %s: %w",
				e.Key.Kind(), node.Dump(e.Key), node.ErrTypeMismatch)
		}
		if _, dup := res[t.Value()]; dup {
			// Repeated keys keep the first occurrence, matching the
			// single-value accessors of the model.
			continue
		}
		v, err := a.Encode(e.Value)
		if err != nil {
			return nil, err
		}
		res[t.Value()] = v
	}
	return res, nil
}

func (a AnyTree) Decode(v any) (node.Node, error) {
	switch x := v.(type) {
	case nil:
		return node.Null(), nil
	case node.Node:
		return x, nil
	case bool:
		return node.Flag(x), nil
	case float64:
		return node.Numeric(x), nil
	case float32:
		return node.Numeric(float64(x)), nil
	case int:
		return node.Numeric(float64(x)), nil
	case int32:
		return node.Numeric(float64(x)), nil
	case int64:
		return node.Numeric(float64(x)), nil
	case uint:
		return node.Numeric(float64(x)), nil
	case uint32:
		return node.Numeric(float64(x)), nil
	case uint64:
		return node.Numeric(float64(x)), nil
	case string:
		return node.Text(x), nil
	case []any:
		children := make([]node.Node, len(x))
		for i, elem := range x {
			child, err := a.Decode(elem)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return node.Sequence(children...), nil
	case map[string]any:
		// Map iteration order is random; sorting keys keeps decoded
		// trees deterministic.
		entries := make([]node.Entry, 0, len(x))
		keys := make([]string, 0, len(x))
		for key := range x {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			value, err := a.Decode(x[key])
			if err != nil {
				return nil, err
			}
			entries = append(entries, node.Entry{Key: node.Text(key), Value: value})
		}
		return node.KeyValue(entries...), nil
	case map[any]any:
		res := make(map[string]any, len(x))
		for key, value := range x {
			s, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("cannot decode %T key %v: %w", key, key, node.ErrTypeMismatch)
			}
			res[s] = value
		}
		return a.Decode(res)
	}
	return nil, fmt.Errorf("cannot decode %T into a node: %w", v, node.ErrTypeMismatch)
}
