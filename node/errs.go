package node

import "errors"

var (
	// ErrNotFound reports a key lookup that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrTypeMismatch reports a failed To conversion.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnsupported reports an operation the node cannot perform,
	// such as mutating the Missing() sentinel.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrOutOfBounds reports an index outside [0, Count).
	ErrOutOfBounds = errors.New("index out of bounds")
)
