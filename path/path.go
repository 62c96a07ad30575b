package path

import (
	"fmt"
	"slices"
	"strings"
)

// Segment is one step of a path. Exactly one of Field and Index is
// set; the nil one tells the step kinds apart.
type Segment struct {
	Field *string
	Index *int64
}

// Field returns a segment stepping into a dictionary by key.
func Field(name string) Segment {
	return Segment{Field: &name}
}

// Index returns a segment stepping into an indexed group by position.
func Index(index int64) Segment {
	return Segment{Index: &index}
}

func (s Segment) IsField() bool { return s.Field != nil }
func (s Segment) IsIndex() bool { return s.Index != nil }

// Equal reports whether two segments take the same step.
func (s Segment) Equal(o Segment) bool {
	if (s.Field == nil) != (o.Field == nil) {
		return false
	}
	if s.Field != nil {
		return *s.Field == *o.Field
	}
	if (s.Index == nil) != (o.Index == nil) {
		return false
	}
	if s.Index != nil {
		return *s.Index == *o.Index
	}
	return true
}

// String returns the canonical text of this single segment:
//   - Field("a")          → "a"
//   - Field("spaced out") → "'spaced out'"
//   - Index(3)            → "[3]"
func (s Segment) String() string {
	if s.Field != nil {
		return quoteField(*s.Field)
	}
	if s.Index != nil {
		return fmt.Sprintf("[%d]", *s.Index)
	}
	return ""
}

func quoteField(field string) string {
	if field != "" && strings.IndexAny(field, "'.*$[] \t") == -1 {
		return field
	}
	return "'" + strings.ReplaceAll(field, "'", "\\'") + "'"
}

// Path is a chain of segments, absolute when anchored at a tree root.
// The zero value is the empty relative path.
type Path struct {
	Segments []Segment
	Absolute bool
}

// Root returns an absolute path anchored at the tree root.
func Root(segments ...Segment) Path {
	return Path{Segments: segments, Absolute: true}
}

// Relative returns a path relative to an unstated starting node.
func Relative(segments ...Segment) Path {
	return Path{Segments: segments}
}

func (p Path) Empty() bool { return len(p.Segments) == 0 }
func (p Path) Len() int    { return len(p.Segments) }

// Child returns a path one segment deeper. The receiver is not
// modified.
func (p Path) Child(s Segment) Path {
	segments := make([]Segment, 0, len(p.Segments)+1)
	segments = append(segments, p.Segments...)
	return Path{Segments: append(segments, s), Absolute: p.Absolute}
}

// Parent returns the path with the last segment removed. The parent of
// an empty path is the path itself.
func (p Path) Parent() Path {
	if len(p.Segments) == 0 {
		return p
	}
	return Path{Segments: slices.Clone(p.Segments[:len(p.Segments)-1]), Absolute: p.Absolute}
}

// Equal reports whether two paths take the same steps from the same
// anchor.
func (p Path) Equal(o Path) bool {
	return p.Absolute == o.Absolute && slices.EqualFunc(p.Segments, o.Segments, Segment.Equal)
}

// String returns the canonical text form. Absolute paths start with
// '$'; fields after the first segment are preceded by '.'.
func (p Path) String() string {
	var sb strings.Builder
	if p.Absolute {
		sb.WriteByte('$')
	}
	for i, s := range p.Segments {
		if s.IsField() && (p.Absolute || i > 0) {
			sb.WriteByte('.')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}
