// Package cache provides artifact caching for rendered colormap swatches.
//
// The [Cache] interface abstracts over storage backends: a file-based cache
// for CLI usage, a Redis-backed cache for shared server deployments, and a
// null cache for tests or --no-cache runs. Keys are generated through a
// [Keyer] so that every component hashes render options the same way.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by string.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// SwatchKeyOpts are the render options that distinguish swatch artifacts.
type SwatchKeyOpts struct {
	Format string // "png", "svg", or "json"
	Width  int
	Height int
}

// SheetKeyOpts are the layout options that distinguish sheet artifacts.
type SheetKeyOpts struct {
	Format     string
	Columns    int
	CellWidth  int
	CellHeight int
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// SwatchKey generates a key for a single colormap swatch.
	SwatchKey(name string, opts SwatchKeyOpts) string

	// SheetKey generates a key for a full catalog sheet. catalogHash
	// identifies the catalog contents so user-loaded maps invalidate it.
	SheetKey(catalogHash string, opts SheetKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SwatchKey generates a key for a single colormap swatch.
func (k *DefaultKeyer) SwatchKey(name string, opts SwatchKeyOpts) string {
	return hashKey("swatch", name, opts)
}

// SheetKey generates a key for a full catalog sheet.
func (k *DefaultKeyer) SheetKey(catalogHash string, opts SheetKeyOpts) string {
	return hashKey("sheet", catalogHash, opts)
}
