// Package path addresses positions inside a node tree. A Path is a
// sequence of segments, each stepping into a dictionary by key or into
// an indexed group by position. Paths render to and parse from a
// compact text form: "$.users[0].name" is an absolute path, three
// segments deep.
package path
