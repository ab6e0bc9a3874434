package cmap

import (
	"sort"
	"strings"
)

// ReversedSuffix marks a name as the reverse-ordered counterpart of another
// colormap. Reversed names resolve through a registry like any other name,
// but they never define an alias group of their own.
const ReversedSuffix = "_r"

// LabelSeparator joins the alias names of one group into its display label.
const LabelSeparator = ",  "

// Entry is one (name, value) pair of a name table, in its original order.
// The value is treated as an opaque comparable token: entries whose values
// compare equal are aliases of the same colormap.
type Entry[V comparable] struct {
	Name  string
	Value V
}

// Labeled is one collapsed alias group: all names sharing a value combined
// into a single label, plus one concrete representative name.
type Labeled[V comparable] struct {
	// Label combines the group's names with [LabelSeparator], most recently
	// discovered name first.
	Label string

	// Name is one concrete name whose value equals the group's value. All
	// names in a group are equivalent lookups, so any one serves.
	Name string

	// Value is the shared colormap value.
	Value V
}

// CollapseAliases folds an ordered name table into one entry per distinct
// value. Names ending in [ReversedSuffix] are skipped entirely: they never
// create or join a group, so a value reachable only through reversed names
// is silently absent from the result.
//
// Within a group, names accumulate at the front, so the label lists them in
// reverse discovery order. The result is sorted lexicographically by label;
// labels are unique because each distinct value yields exactly one group.
func CollapseAliases[V comparable](entries []Entry[V]) []Labeled[V] {
	names := make(map[V][]string)
	var order []V

	for _, e := range entries {
		if strings.HasSuffix(e.Name, ReversedSuffix) {
			continue
		}
		if _, ok := names[e.Value]; !ok {
			order = append(order, e.Value)
		}
		names[e.Value] = append([]string{e.Name}, names[e.Value]...)
	}

	out := make([]Labeled[V], 0, len(order))
	for _, v := range order {
		ns := names[v]
		out = append(out, Labeled[V]{
			Label: strings.Join(ns, LabelSeparator),
			Name:  ns[0],
			Value: v,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
