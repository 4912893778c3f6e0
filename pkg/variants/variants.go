// Package variants declares the style axes of a component family and resolves
// the class fragments for a selection of axis values.
package variants

import (
	"sort"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

// Choice selects one value on a named axis. Build it with Axis.Pick.
type Choice struct {
	axis  string
	value string
}

// Axis is a named style axis whose values are the constants of V.
type Axis[V ~string] struct {
	name    string
	def     V
	classes map[V]string
}

// NewAxis declares an axis. def must be a key of classes.
func NewAxis[V ~string](name string, def V, classes map[V]string) *Axis[V] {
	copied := make(map[V]string, len(classes))
	for v, c := range classes {
		copied[v] = c
	}
	return &Axis[V]{name: name, def: def, classes: copied}
}

// Name returns the axis name.
func (a *Axis[V]) Name() string { return a.name }

// Default returns the value used when the axis is not picked.
func (a *Axis[V]) Default() V { return a.def }

// Pick selects v on this axis. The zero value selects the default.
func (a *Axis[V]) Pick(v V) Choice {
	if v == "" {
		v = a.def
	}
	return Choice{axis: a.name, value: string(v)}
}

// Classes returns the fragment for v, or the default's when v is empty.
// Values outside the declared set have no fragment.
func (a *Axis[V]) Classes(v V) string {
	if v == "" {
		v = a.def
	}
	return a.classes[v]
}

// Values returns the declared values in sorted order.
func (a *Axis[V]) Values() []V {
	values := make([]V, 0, len(a.classes))
	for v := range a.classes {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

func (a *Axis[V]) axisName() string     { return a.name }
func (a *Axis[V]) defaultValue() string { return string(a.def) }

func (a *Axis[V]) fragment(value string) string {
	return a.classes[V(value)]
}

func (a *Axis[V]) describe() AxisInfo {
	info := AxisInfo{Name: a.name, Default: string(a.def)}
	for _, v := range a.Values() {
		info.Values = append(info.Values, ValueInfo{Value: string(v), Classes: a.classes[v]})
	}
	return info
}

// AxisDef is implemented by *Axis[V] for every V.
type AxisDef interface {
	axisName() string
	defaultValue() string
	fragment(value string) string
	describe() AxisInfo
}

// Compound adds Class when every choice in When is selected.
type Compound struct {
	When  []Choice
	Class string
}

// Table is the variant definition of one component family: a base fragment,
// axes in declaration order and compound rules. Tables are immutable.
type Table struct {
	base      string
	axes      []AxisDef
	compounds []Compound
}

// New declares a table. Axes are resolved in the order given.
func New(base string, axes ...AxisDef) *Table {
	return &Table{base: base, axes: append([]AxisDef(nil), axes...)}
}

// WithCompounds returns a copy of t with extra compound rules.
func (t *Table) WithCompounds(compounds ...Compound) *Table {
	out := &Table{base: t.base, axes: t.axes}
	out.compounds = append(append([]Compound(nil), t.compounds...), compounds...)
	return out
}

// Base returns the fragment applied regardless of the selection.
func (t *Table) Base() string { return t.base }

func (t *Table) selection(choices []Choice) map[string]string {
	sel := make(map[string]string, len(t.axes))
	for _, a := range t.axes {
		sel[a.axisName()] = a.defaultValue()
	}
	for _, c := range choices {
		if _, ok := sel[c.axis]; ok && c.value != "" {
			sel[c.axis] = c.value
		}
	}
	return sel
}

// Resolve returns the fragment of the selected value on every axis, in
// declaration order, followed by matching compound fragments. Axes without a
// choice use their default; choices for axes outside the table are ignored;
// empty fragments are omitted.
func (t *Table) Resolve(choices ...Choice) []string {
	sel := t.selection(choices)
	var out []string
	for _, a := range t.axes {
		if f := a.fragment(sel[a.axisName()]); f != "" {
			out = append(out, f)
		}
	}
	for _, c := range t.compounds {
		if c.Class != "" && matches(sel, c.When) {
			out = append(out, c.Class)
		}
	}
	return out
}

// Classes merges the base fragment with Resolve(choices...) using the default
// resolver.
func (t *Table) Classes(choices ...Choice) string {
	return tw.CN(t.base, t.Resolve(choices...))
}

func matches(sel map[string]string, when []Choice) bool {
	for _, c := range when {
		if sel[c.axis] != c.value {
			return false
		}
	}
	return true
}

// AxisInfo describes an axis for tooling.
type AxisInfo struct {
	Name    string      `json:"name"`
	Default string      `json:"default"`
	Values  []ValueInfo `json:"values"`
}

// ValueInfo is one value of an axis and its fragment.
type ValueInfo struct {
	Value   string `json:"value"`
	Classes string `json:"classes"`
}

// Describe lists the table's axes in declaration order.
func (t *Table) Describe() []AxisInfo {
	infos := make([]AxisInfo, 0, len(t.axes))
	for _, a := range t.axes {
		infos = append(infos, a.describe())
	}
	return infos
}
