package tw

import (
	"sort"
	"strings"
)

// token is a class fragment split into the parts that take part in conflict
// detection.
type token struct {
	modifiers string // sorted, ":"-joined variant modifiers
	important bool
	base      string // utility without modifiers, "!" or a leading "-"
}

func parseToken(raw string) token {
	parts := splitModifiers(raw)
	base := parts[len(parts)-1]
	mods := parts[:len(parts)-1]

	t := token{}
	switch {
	case strings.HasPrefix(base, "!"):
		t.important = true
		base = base[1:]
	case strings.HasSuffix(base, "!"):
		t.important = true
		base = base[:len(base)-1]
	}
	if len(base) > 1 && base[0] == '-' {
		base = base[1:]
	}
	t.base = base

	if len(mods) > 0 {
		sorted := make([]string, len(mods))
		copy(sorted, mods)
		sort.Strings(sorted)
		t.modifiers = strings.Join(sorted, ":")
	}
	return t
}

// scope is the part of the family key shared by every family the token touches.
func (t token) scope() string {
	if t.important {
		return t.modifiers + "!"
	}
	return t.modifiers
}

// splitModifiers splits on ':' outside of square brackets and parentheses, so
// data-[state=open]:x and [mask-type:luminance] stay intact.
func splitModifiers(raw string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, raw[start:])
}

// arbitraryProperty returns the CSS property of a [prop:value] utility.
func arbitraryProperty(base string) (string, bool) {
	if len(base) < 3 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}
	inner := base[1 : len(base)-1]
	i := strings.IndexByte(inner, ':')
	if i <= 0 {
		return "", false
	}
	return inner[:i], true
}
