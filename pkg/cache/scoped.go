package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// A server instance serving several catalogs (built-in plus user-loaded
// colormap files) scopes each catalog's artifacts separately.
//
// Example usage:
//
//	// Keys for a user-supplied catalog file
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "catalog:team-maps:")
//
//	// Keys for the built-in catalog
//	builtinKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SwatchKey generates a prefixed key for a single colormap swatch.
func (k *ScopedKeyer) SwatchKey(name string, opts SwatchKeyOpts) string {
	return k.prefix + k.inner.SwatchKey(name, opts)
}

// SheetKey generates a prefixed key for a full catalog sheet.
func (k *ScopedKeyer) SheetKey(catalogHash string, opts SheetKeyOpts) string {
	return k.prefix + k.inner.SheetKey(catalogHash, opts)
}
