package eval

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/treeop"
)

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrDirectiveExists  = errors.New("directive exists")
	ErrCyclicDependency = errors.New("cyclic dependency")
)

// Directive is a named computation over an evaluation context. Resolve
// receives the resolver running it so directives can depend on one
// another; the resolver, not the directive, is responsible for
// noticing when such dependencies bite their own tail.
type Directive interface {
	Name() string
	Resolve(ctx treeop.Context, r *Resolver) (node.Node, error)
}

// Resolver is a directive registry plus the state of the resolution
// chain currently in flight. Register, Lookup and Names are safe for
// concurrent use; Resolve is not, as the chain state belongs to one
// resolution at a time. Give each concurrent evaluation its own
// resolver.
type Resolver struct {
	mu         sync.RWMutex
	directives map[string]Directive

	resolving map[string]bool
}

func NewResolver() *Resolver {
	return &Resolver{
		directives: map[string]Directive{},
		resolving:  map[string]bool{},
	}
}

// Register adds a directive under its name, failing with
// ErrDirectiveExists when the name is taken.
func (r *Resolver) Register(d Directive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.directives[d.Name()]; present {
		return fmt.Errorf("%s: %w", d.Name(), ErrDirectiveExists)
	}
	r.directives[d.Name()] = d
	return nil
}

// Lookup returns the directive registered under name, or nil. It is
// the non-failing read; Resolve reports ErrUnknownDirective.
func (r *Resolver) Lookup(name string) Directive {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.directives[name]
}

// Names returns the registered directive names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.directives))
	for name := range r.directives {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve runs the named directive against ctx. A directive reached
// again while its own resolution is still in flight fails with
// ErrCyclicDependency naming it; the in-flight mark clears on every
// exit path, so one poisoned chain does not break later calls.
func (r *Resolver) Resolve(name string, ctx treeop.Context) (node.Node, error) {
	d := r.Lookup(name)
	if d == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownDirective)
	}
	if r.resolving[name] {
		return nil, fmt.Errorf("%s: %w", name, ErrCyclicDependency)
	}
	r.resolving[name] = true
	defer delete(r.resolving, name)

	if debug.Eval() {
		debug.Logf("resolve %s at %s\n", name, ctx.Location)
	}
	return d.Resolve(ctx, r)
}
