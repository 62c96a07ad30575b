package translate

import "github.com/interlayer-space/elementary-go/node"

// Translator converts between nodes and an intrinsic external type I.
// A is the node capability Encode accepts; P is the node type Decode
// produces. Implementations are free to narrow either: a translator
// for a scalar format would take A = node.ScalarNode.
type Translator[I any, A node.Node, P node.Node] interface {
	// Encode renders a node into the intrinsic type.
	Encode(n A) (I, error)

	// Decode builds a node from the intrinsic type.
	Decode(intrinsic I) (P, error)
}
