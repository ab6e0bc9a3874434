// Package pipeline provides the lookup → layout → render pipeline shared by
// the CLI and the HTTP server.
//
// Centralizing this logic keeps artifact rendering, cache keying, and
// validation consistent across all entry points: a swatch rendered by
// `swatchbook render` and one served by `swatchbook serve` come out of the
// same code path and the same cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cmap.Default, fileCache, nil, logger)
//	res, err := runner.Swatch(ctx, "fire", pipeline.SwatchOptions{Format: pipeline.FormatPNG})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("fire.png", res.Data, 0644)
package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/swatchbook/pkg/cache"
	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/errors"
	"github.com/matzehuels/swatchbook/pkg/observability"
	"github.com/matzehuels/swatchbook/pkg/render/img"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default swatch strip width in pixels.
	DefaultWidth = img.DefaultStripWidth

	// DefaultHeight is the default swatch strip height in pixels.
	DefaultHeight = img.DefaultStripHeight

	// DefaultColumns is the default sheet column count.
	DefaultColumns = img.DefaultColumns

	// DefaultPaletteSize is the default LUT size for JSON exports.
	DefaultPaletteSize = 256

	// DefaultTTL is how long cached artifacts stay valid. Artifacts are
	// content-addressed by options, so a long TTL is safe.
	DefaultTTL = 24 * time.Hour
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported swatch output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// SwatchOptions configures a single-colormap artifact.
type SwatchOptions struct {
	Format      string `json:"format,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	PaletteSize int    `json:"palette_size,omitempty"` // JSON format only
	Refresh     bool   `json:"refresh,omitempty"`      // bypass the cache read
}

// SetDefaults fills in zero-valued fields.
func (o *SwatchOptions) SetDefaults() {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.PaletteSize == 0 {
		o.PaletteSize = DefaultPaletteSize
	}
}

// SheetOptions configures a full-catalog sheet artifact.
type SheetOptions struct {
	Columns    int  `json:"columns,omitempty"`
	CellWidth  int  `json:"cell_width,omitempty"`
	CellHeight int  `json:"cell_height,omitempty"`
	Refresh    bool `json:"refresh,omitempty"`
}

// SetDefaults fills in zero-valued fields. A negative Columns is left
// untouched so the grid arranger can reject it.
func (o *SheetOptions) SetDefaults() {
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.CellWidth == 0 {
		o.CellWidth = img.DefaultCellWidth
	}
	if o.CellHeight == 0 {
		o.CellHeight = img.DefaultCellHeight
	}
}

// =============================================================================
// Runner
// =============================================================================

// Result is a rendered artifact plus provenance.
type Result struct {
	Data   []byte
	Format string
	Cached bool
}

// Runner executes the render pipeline against one registry.
type Runner struct {
	registry *cmap.Registry
	cache    cache.Cache
	keyer    cache.Keyer
	logger   *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables caching, a nil
// keyer uses the default keyer, and a nil logger uses the default logger.
func NewRunner(registry *cmap.Registry, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{registry: registry, cache: c, keyer: keyer, logger: logger}
}

// Registry returns the registry the runner serves.
func (r *Runner) Registry() *cmap.Registry {
	return r.registry
}

// Swatch renders (or fetches) a single-colormap artifact.
func (r *Runner) Swatch(ctx context.Context, name string, opts SwatchOptions) (*Result, error) {
	opts.SetDefaults()
	if !ValidFormats[opts.Format] {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be 'png', 'svg', or 'json')", opts.Format)
	}

	cm, err := r.registry.Get(name)
	if err != nil {
		return nil, err
	}

	key := r.keyer.SwatchKey(cm.Name, cache.SwatchKeyOpts{
		Format: opts.Format,
		Width:  opts.Width,
		Height: opts.Height,
	})
	if res, ok := r.fromCache(ctx, key, "swatch", opts.Refresh, opts.Format); ok {
		return res, nil
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, cm.Name, opts.Format)

	var data []byte
	switch opts.Format {
	case FormatPNG:
		data, err = img.StripPNG(cm, opts.Width, opts.Height)
	case FormatSVG:
		data, err = img.StripSVG(cm, opts.Width, opts.Height)
	case FormatJSON:
		data, err = exportJSON(cm, opts.PaletteSize)
	}
	observability.Render().OnRenderComplete(ctx, cm.Name, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.toCache(ctx, key, "swatch", data)
	r.logger.Debugf("Rendered %s swatch for %s: %d bytes", opts.Format, cm.Name, len(data))
	return &Result{Data: data, Format: opts.Format}, nil
}

// Sheet renders (or fetches) a sheet of every collapsed alias group in the
// registry, arranged newspaper-style.
func (r *Runner) Sheet(ctx context.Context, opts SheetOptions) (*Result, error) {
	opts.SetDefaults()

	key := r.keyer.SheetKey(r.catalogHash(), cache.SheetKeyOpts{
		Format:     FormatPNG,
		Columns:    opts.Columns,
		CellWidth:  opts.CellWidth,
		CellHeight: opts.CellHeight,
	})
	if res, ok := r.fromCache(ctx, key, "sheet", opts.Refresh, FormatPNG); ok {
		return res, nil
	}

	cells := r.registry.Labeled()

	start := time.Now()
	observability.Render().OnRenderStart(ctx, "catalog", FormatPNG)
	data, err := img.SheetPNG(cells, opts.Columns, opts.CellWidth, opts.CellHeight)
	observability.Render().OnRenderComplete(ctx, "catalog", FormatPNG, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.toCache(ctx, key, "sheet", data)
	r.logger.Debugf("Rendered catalog sheet: %d colormaps, %d bytes", len(cells), len(data))
	return &Result{Data: data, Format: FormatPNG}, nil
}

// fromCache reads a cached artifact unless a refresh was requested.
// Cache errors degrade to a miss; the artifact can always be re-rendered.
func (r *Runner) fromCache(ctx context.Context, key, keyType string, refresh bool, format string) (*Result, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Debugf("Cache read failed for %s: %v", keyType, err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return &Result{Data: data, Format: format, Cached: true}, true
}

// toCache stores a rendered artifact. Failures are logged, not fatal.
func (r *Runner) toCache(ctx context.Context, key, keyType string, data []byte) {
	if err := r.cache.Set(ctx, key, data, DefaultTTL); err != nil {
		r.logger.Debugf("Cache write failed for %s: %v", keyType, err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// catalogHash identifies the registry contents, so sheets re-render when
// user colormap files add entries.
func (r *Runner) catalogHash() string {
	return cache.Hash([]byte(strings.Join(r.registry.Names(), ",")))
}

// paletteExport is the JSON artifact schema.
type paletteExport struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Colors   []string `json:"colors"`
}

func exportJSON(cm *cmap.Colormap, paletteSize int) ([]byte, error) {
	out := paletteExport{
		Name:     cm.Name,
		Category: string(cm.Category),
		Colors:   cm.Palette(paletteSize),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode palette for %s", cm.Name)
	}
	return append(data, '\n'), nil
}
