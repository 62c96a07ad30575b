package node

import (
	"strconv"
	"strings"
)

// Dump renders a node as stable, indented text for debugging, error
// messages and diffs. It is not a wire format: nothing parses it
// back.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	switch n.Kind() {
	case GroupKind:
		g, ok := As[GroupNode](n)
		if !ok {
			sb.WriteString("<group>")
			break
		}
		children := g.Children()
		if len(children) == 0 {
			sb.WriteString("[]")
			break
		}
		sb.WriteString("[\n")
		for _, c := range children {
			indent(sb, depth+1)
			dump(sb, c, depth+1)
			sb.WriteString("\n")
		}
		indent(sb, depth)
		sb.WriteString("]")
	case KeyValueKind:
		kv, ok := As[KeyValueNode](n)
		if !ok {
			sb.WriteString("<keyvalue>")
			break
		}
		entries := kv.Content()
		if len(entries) == 0 {
			sb.WriteString("{}")
			break
		}
		sb.WriteString("{\n")
		for _, e := range entries {
			indent(sb, depth+1)
			sb.WriteString(scalarText(e.Key))
			sb.WriteString(": ")
			dump(sb, e.Value, depth+1)
			sb.WriteString("\n")
		}
		indent(sb, depth)
		sb.WriteString("}")
	default:
		sb.WriteString(scalarText(n))
	}
	if attrs := n.Attributes(); attrs != nil && !attrs.Empty() {
		sb.WriteString(" @")
		dump(sb, attrs, depth)
	}
}

// scalarText renders leaf nodes on one line. Container keys collapse
// to a kind placeholder; real documents do not have them.
func scalarText(n Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind() {
	case NullKind:
		return "null"
	case FlagKind:
		if f, ok := As[FlagNode](n); ok {
			return strconv.FormatBool(f.Value())
		}
	case NumericKind:
		if num, ok := As[NumericNode](n); ok {
			return strconv.FormatFloat(num.Value(), 'g', -1, 64)
		}
	case TextKind:
		if t, ok := As[TextNode](n); ok {
			return strconv.Quote(t.Value())
		}
	case SpecialKind:
		if IsMissing(n) {
			return "<missing>"
		}
		return "<special>"
	}
	return "<" + strings.ToLower(n.Kind().String()) + ">"
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}
