// Package translate moves values across the boundary between the node
// model and external representations. A Translator pairs an intrinsic
// external type with the node capability it accepts and the node type
// it produces; AnyTree is the stock translator for plain Go any trees,
// the shape in-memory decoders hand out.
package translate
