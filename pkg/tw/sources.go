package tw

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// CN resolves class sources with the Default resolver.
//
// A source is a string, a []string, a []any (nested freely), a map[string]bool
// whose true keys are included in sorted order, a fmt.Stringer, or an omitted
// value: nil, a typed nil pointer, false or "". Sources of any other type are
// ignored.
func CN(sources ...any) string {
	return Default.Resolve(sources...)
}

// If returns classes when cond holds and an empty source otherwise.
func If(cond bool, classes string) string {
	if cond {
		return classes
	}
	return ""
}

// Join flattens sources into one space-separated string without resolving
// conflicts.
func Join(sources ...any) string {
	var parts []string
	for _, s := range appendSources(nil, sources) {
		parts = append(parts, strings.Fields(s)...)
	}
	return strings.Join(parts, " ")
}

func appendSources(dst []string, sources []any) []string {
	for _, src := range sources {
		switch v := src.(type) {
		case nil, bool:
		case string:
			if v != "" {
				dst = append(dst, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					dst = append(dst, s)
				}
			}
		case []any:
			dst = appendSources(dst, v)
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			dst = append(dst, keys...)
		case fmt.Stringer:
			if isNilPointer(v) {
				continue
			}
			if s := v.String(); s != "" {
				dst = append(dst, s)
			}
		}
	}
	return dst
}

// isNilPointer reports whether v holds a typed nil, which is omitted like a
// plain nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
