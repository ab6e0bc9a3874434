package cmap

import (
	"sort"

	"github.com/matzehuels/swatchbook/pkg/errors"
)

// Registry is an ordered name table of colormaps. Registration order is
// preserved because it determines alias-group label order; lookups go
// through a map. Aliases share the identical *Colormap value, which is what
// groups them during [CollapseAliases].
//
// A Registry is not safe for concurrent mutation; build it up front and
// share it read-only afterwards.
type Registry struct {
	entries []Entry[*Colormap]
	byName  map[string]*Colormap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Colormap)}
}

// Add registers a colormap under its canonical name plus any aliases, and
// auto-registers the reversed variant under every name with the "_r"
// suffix. All aliases resolve to the identical colormap value.
func (r *Registry) Add(cm *Colormap, aliases ...string) error {
	rev := cm.Reversed()

	names := append([]string{cm.Name}, aliases...)
	for _, name := range names {
		if err := errors.ValidateColormapName(name); err != nil {
			return err
		}
		if _, exists := r.byName[name]; exists {
			return errors.New(errors.ErrCodeInvalidColormap, "colormap %q is already registered", name)
		}
		if _, exists := r.byName[name+ReversedSuffix]; exists {
			return errors.New(errors.ErrCodeInvalidColormap, "colormap %q is already registered", name+ReversedSuffix)
		}
	}

	for _, name := range names {
		r.register(name, cm)
	}
	for _, name := range names {
		r.register(name+ReversedSuffix, rev)
	}
	return nil
}

func (r *Registry) register(name string, cm *Colormap) {
	r.entries = append(r.entries, Entry[*Colormap]{Name: name, Value: cm})
	r.byName[name] = cm
}

// Get resolves a name (canonical, alias, or reversed variant) to its
// colormap. It returns a COLORMAP_NOT_FOUND error for unknown names.
func (r *Registry) Get(name string) (*Colormap, error) {
	cm, ok := r.byName[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeColormapNotFound, "no colormap named %q", name)
	}
	return cm, nil
}

// Has reports whether a name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Entries returns the full name table in registration order, including
// aliases and reversed variants.
func (r *Registry) Entries() []Entry[*Colormap] {
	out := make([]Entry[*Colormap], len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns all registered names sorted lexicographically, e.g. for
// shell completion or choosers.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered names, including aliases and
// reversed variants.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Labeled collapses the registry's name table into one display entry per
// distinct colormap, sorted by label. Reversed variants remain resolvable
// through [Registry.Get] but never appear as groups here.
func (r *Registry) Labeled() []Labeled[*Colormap] {
	return CollapseAliases(r.entries)
}
