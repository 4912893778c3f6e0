package ui

import (
	"sort"

	"github.com/vango-dev/vango-ui/pkg/variants"
)

var tables = map[string]*variants.Table{
	"avatar":             avatarVariants,
	"badge":              badgeVariants,
	"button":             buttonVariants,
	"dropdown-menu":      dropdownContentVariants,
	"dropdown-menu-item": dropdownItemVariants,
	"icon-button":        iconButtonVariants,
	"popover":            popoverVariants,
	"spinner":            spinnerVariants,
	"tooltip":            tooltipVariants,
}

// VariantTable returns the variant table a component renders with.
func VariantTable(name string) (*variants.Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// VariantTableNames lists the components with a variant table, sorted.
func VariantTableNames() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
