package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the canonical text form back into a Path. A leading '$'
// makes the path absolute; everything after it alternates '.'-prefixed
// or quoted fields with '['-bracketed indexes. Relative paths start
// directly with a field or an index.
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("empty path")
	}
	p := Path{}
	rest := s
	if s[0] == '$' {
		p.Absolute = true
		rest = s[1:]
	} else if s[0] != '.' && s[0] != '[' {
		field, next, err := parseField(rest)
		if err != nil {
			return Path{}, fmt.Errorf("path %q: %w", s, err)
		}
		p.Segments = append(p.Segments, Field(field))
		rest = next
	}
	for rest != "" {
		var err error
		p, rest, err = parseFrag(p, rest)
		if err != nil {
			return Path{}, fmt.Errorf("path %q: %w", s, err)
		}
	}
	return p, nil
}

// MustParse is Parse for compile-time-constant paths; it panics on
// malformed input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseFrag(p Path, frag string) (Path, string, error) {
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return p, "", err
		}
		p.Segments = append(p.Segments, Field(field))
		return p, rest, nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return p, "", fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return p, "", err
		}
		p.Segments = append(p.Segments, Index(index))
		return p, frag[i+2:], nil
	default:
		return p, "", fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(s string) (int64, error) {
	u, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("expected index, got %q", s)
	}
	return int64(u), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}
