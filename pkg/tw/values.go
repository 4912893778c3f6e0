package tw

import (
	"regexp"
	"strings"
)

// ValueKind selects which values after a rule prefix belong to the rule's family.
type ValueKind string

const (
	// ValueAny accepts every non-empty value. Colour families use it as the
	// fallback after the length rules of the same prefix.
	ValueAny ValueKind = "any"
	// ValueLength accepts spacing-scale numbers, fractions, sizing keywords and
	// arbitrary lengths such as [3px].
	ValueLength ValueKind = "length"
	// ValueNumber accepts integers and arbitrary numbers.
	ValueNumber ValueKind = "number"
	// ValueTshirt accepts xs..9xl, base and arbitrary lengths. A trailing
	// /modifier (text-sm/6) is ignored.
	ValueTshirt ValueKind = "tshirt"
	// ValueSize accepts lengths, t-shirt sizes and the sizing keywords none,
	// prose and screen-{size}.
	ValueSize ValueKind = "size"
	// ValueShadow accepts arbitrary box-shadow values such as [0_0_0_1px_red].
	ValueShadow ValueKind = "shadow"
)

var (
	lengthRe          = regexp.MustCompile(`^(\d+(\.\d+)?|\d+/\d+|px|full|screen|auto|min|max|fit|svh|lvh|dvh|svw|lvw|dvw)$`)
	numberRe          = regexp.MustCompile(`^\d+(\.\d+)?$`)
	tshirtRe          = regexp.MustCompile(`^(\d*(xs|sm|md|lg|xl)|base)$`)
	sizeKeywordRe     = regexp.MustCompile(`^(none|prose|screen-(sm|md|lg|xl|2xl))$`)
	arbitraryLenRe    = regexp.MustCompile(`^(length:.+|-?\d*\.?\d+(px|rem|em|%|vh|vw|ch|ex|lh|svh|dvh|vmin|vmax|pt|pc|cm|mm|in)|0|(calc|min|max|clamp|var)\(.+\)|--.+)$`)
	arbitraryShadowRe = regexp.MustCompile(`^(shadow:.+|(inset_)?-?(\d*\.?\d+[a-z]+|0)_-?(\d*\.?\d+[a-z]+|0).*)$`)
	arbitraryNumRe    = regexp.MustCompile(`^(number:.+|-?\d*\.?\d+)$`)
	arbitraryValueRe  = regexp.MustCompile(`^\[(.+)\]$`)
)

// ValueKinds lists the kinds accepted in configuration files.
func ValueKinds() []ValueKind {
	return []ValueKind{ValueAny, ValueLength, ValueNumber, ValueTshirt, ValueSize, ValueShadow}
}

func (k ValueKind) match(value string) bool {
	if value == "" {
		return false
	}
	switch k {
	case ValueLength:
		return lengthRe.MatchString(value) || isArbitrary(value, arbitraryLenRe)
	case ValueNumber:
		return numberRe.MatchString(value) || isArbitrary(value, arbitraryNumRe)
	case ValueTshirt:
		if i := strings.IndexByte(value, '/'); i > 0 {
			value = value[:i]
		}
		return tshirtRe.MatchString(value) || isArbitrary(value, arbitraryLenRe)
	case ValueSize:
		return ValueLength.match(value) || tshirtRe.MatchString(value) || sizeKeywordRe.MatchString(value)
	case ValueShadow:
		return isArbitrary(value, arbitraryShadowRe)
	default:
		return true
	}
}

func isArbitrary(value string, inner *regexp.Regexp) bool {
	m := arbitraryValueRe.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	return inner.MatchString(m[1])
}
