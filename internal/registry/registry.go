// Package registry groups parsed plugin entries by logical name and finds the
// names installed in more than one version.
package registry

import (
	"slices"

	"github.com/indaco/eclean/internal/plugin"
)

// Group is every installed entry sharing one logical name, sorted ascending by
// version. The last entry is the one kept during cleanup.
type Group struct {
	Name    string
	Entries []plugin.Entry
}

// IsDuplicate reports whether the group holds more than one entry.
func (g Group) IsDuplicate() bool {
	return len(g.Entries) > 1
}

// Kept returns the highest-ordered entry.
func (g Group) Kept() plugin.Entry {
	return g.Entries[len(g.Entries)-1]
}

// Discarded returns every entry except the kept one, in ascending order.
func (g Group) Discarded() []plugin.Entry {
	return slices.Clip(g.Entries[:len(g.Entries)-1])
}

// Registry maps logical names to their sorted groups. It is built once by
// Build and not modified afterwards.
type Registry struct {
	order  []string
	groups map[string][]plugin.Entry
}

// Build groups entries by name and sorts each group with version.Compare.
//
// The sort is stable: entries that compare equal keep their input order, so
// the last of them seen in the listing is the one that gets kept.
func Build(entries []plugin.Entry) *Registry {
	r := &Registry{groups: make(map[string][]plugin.Entry)}
	for _, e := range entries {
		if _, ok := r.groups[e.Name]; !ok {
			r.order = append(r.order, e.Name)
		}
		r.groups[e.Name] = append(r.groups[e.Name], e)
	}
	for _, list := range r.groups {
		slices.SortStableFunc(list, func(a, b plugin.Entry) int {
			return a.Version.Compare(b.Version)
		})
	}
	return r
}

// Len returns the number of distinct logical names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup returns the group for name.
func (r *Registry) Lookup(name string) (Group, bool) {
	list, ok := r.groups[name]
	if !ok {
		return Group{}, false
	}
	return Group{Name: name, Entries: list}, true
}

// Groups returns every group in first-seen order.
func (r *Registry) Groups() []Group {
	out := make([]Group, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Group{Name: name, Entries: r.groups[name]})
	}
	return out
}

// Duplicates returns the groups with two or more entries, in first-seen order.
func (r *Registry) Duplicates() []Group {
	var out []Group
	for _, name := range r.order {
		if list := r.groups[name]; len(list) > 1 {
			out = append(out, Group{Name: name, Entries: list})
		}
	}
	return out
}
