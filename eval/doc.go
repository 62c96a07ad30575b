// Package eval resolves named directives against an evaluation
// context. A Resolver is a registry: directives register under unique
// names and resolve on demand, possibly resolving others while they
// run. The resolver tracks the in-flight chain and cuts dependency
// cycles instead of recursing forever.
package eval
