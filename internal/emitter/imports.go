package emitter

import (
	"sort"
	"strings"
)

// importGroup is one `use module::{...};` line's worth of items.
type importGroup struct {
	module string
	items  []string
	glob   bool
}

// collectImports splits every "module::item" path in required at its last
// "::" separator and groups items under their module, mirroring
// lib.rs::add_sorted_imports (spec §4.3: "each import is split at its last
// path separator into (module, item)").
func collectImports(required map[string]struct{}) []importGroup {
	byModule := make(map[string]map[string]bool)
	for imp := range required {
		module, item := splitImport(imp)
		if byModule[module] == nil {
			byModule[module] = make(map[string]bool)
		}
		byModule[module][item] = true
	}

	modules := make([]string, 0, len(byModule))
	for m := range byModule {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	groups := make([]importGroup, 0, len(modules))
	for _, m := range modules {
		items := byModule[m]
		if items["*"] {
			groups = append(groups, importGroup{module: m, glob: true})
			continue
		}
		list := make([]string, 0, len(items))
		for it := range items {
			list = append(list, it)
		}
		sort.Strings(list)
		groups = append(groups, importGroup{module: m, items: list})
	}
	return groups
}

func splitImport(imp string) (module, item string) {
	i := strings.LastIndex(imp, "::")
	if i < 0 {
		return "", imp
	}
	return imp[:i], imp[i+2:]
}

// renderImports renders the collected groups as `use` statements, one per
// line, in ascending lexicographic order (spec §7/§8: "imports... emitted
// sorted ascending").
func renderImports(required map[string]struct{}) string {
	groups := collectImports(required)
	var b strings.Builder
	for _, g := range groups {
		switch {
		case g.glob:
			b.WriteString("use " + g.module + "::*;\n")
		case len(g.items) == 1:
			b.WriteString("use " + g.module + "::" + g.items[0] + ";\n")
		default:
			b.WriteString("use " + g.module + "::{" + strings.Join(g.items, ", ") + "};\n")
		}
	}
	return b.String()
}
