// Package tw merges utility class lists. Later classes override earlier ones
// that control the same CSS property; classes it does not recognise pass
// through untouched.
package tw

import (
	"strings"
)

// Merger merges class lists into a single class attribute value.
type Merger interface {
	Merge(classLists ...string) string
}

// Resolver resolves utility conflicts using a fixed family table. A Resolver
// is immutable after New and safe for concurrent use.
type Resolver struct {
	exact     map[string]FamilyID
	prefixes  map[string][]Rule
	conflicts map[FamilyID][]FamilyID
}

// Default is the shared resolver built from DefaultConfig.
var Default = New(DefaultConfig())

// New builds a resolver from cfg. Rules earlier in cfg.Rules take precedence.
func New(cfg Config) *Resolver {
	r := &Resolver{
		exact:     make(map[string]FamilyID),
		prefixes:  make(map[string][]Rule),
		conflicts: make(map[FamilyID][]FamilyID, len(cfg.Conflicts)),
	}
	for _, rule := range cfg.Rules {
		for _, tok := range rule.Exact {
			if _, ok := r.exact[tok]; !ok {
				r.exact[tok] = rule.Family
			}
		}
		if rule.Prefix != "" {
			r.prefixes[rule.Prefix] = append(r.prefixes[rule.Prefix], rule)
		}
	}
	for family, others := range cfg.Conflicts {
		r.conflicts[family] = append([]FamilyID(nil), others...)
	}
	return r
}

// Family reports the conflict family of a single class token, ignoring its
// modifiers.
func (r *Resolver) Family(class string) (FamilyID, bool) {
	return r.family(parseToken(class).base)
}

// Key reports the full conflict key of a class token: modifiers, important
// flag and family. Tokens with equal keys override each other.
func (r *Resolver) Key(class string) (string, bool) {
	t := parseToken(class)
	f, ok := r.family(t.base)
	if !ok {
		return "", false
	}
	return key(t.scope(), f), true
}

func (r *Resolver) family(base string) (FamilyID, bool) {
	if base == "" {
		return "", false
	}
	if f, ok := r.exact[base]; ok {
		return f, true
	}
	if prop, ok := arbitraryProperty(base); ok {
		return FamilyID("[" + prop + "]"), true
	}

	// Longest prefix first, so rounded-tl-lg is tried as rounded-tl- before rounded-.
	for i := len(base) - 1; i > 0; i-- {
		if base[i] != '-' {
			continue
		}
		rules, ok := r.prefixes[base[:i+1]]
		if !ok {
			continue
		}
		value := base[i+1:]
		for _, rule := range rules {
			if rule.Values.match(value) {
				return rule.Family, true
			}
		}
	}
	return "", false
}

func key(scope string, f FamilyID) string {
	return scope + "|" + string(f)
}

// Merge splits every list on whitespace and drops each token that a later
// token overrides. Kept tokens retain their relative order.
func (r *Resolver) Merge(classLists ...string) string {
	var tokens []string
	for _, list := range classLists {
		tokens = append(tokens, strings.Fields(list)...)
	}
	if len(tokens) == 0 {
		return ""
	}

	keep := make([]bool, len(tokens))
	claimed := make(map[string]struct{}, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		t := parseToken(tokens[i])
		f, ok := r.family(t.base)
		if !ok {
			keep[i] = true
			continue
		}
		scope := t.scope()
		k := key(scope, f)
		if _, done := claimed[k]; done {
			continue
		}
		keep[i] = true
		claimed[k] = struct{}{}
		for _, other := range r.conflicts[f] {
			claimed[key(scope, other)] = struct{}{}
		}
	}

	var b strings.Builder
	for i, tok := range tokens {
		if !keep[i] {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// Resolve flattens sources (see CN) and merges the result.
func (r *Resolver) Resolve(sources ...any) string {
	return r.Merge(appendSources(nil, sources)...)
}
