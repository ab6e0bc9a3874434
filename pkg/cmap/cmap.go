// Package cmap provides a catalog of perceptually-uniform colormaps.
//
// A [Colormap] is an ordered list of control colors sampled by linear
// interpolation. Colormaps live in a [Registry] under a canonical long name
// (encoding category and design parameters, e.g. "linear_kryw_0_100_c71")
// plus any number of short aliases ("fire"). Every registered name also gets
// a reversed variant under the "_r" suffix.
//
// [CollapseAliases] folds a registry's name table back into one display
// entry per distinct colormap, combining all aliases into a single label.
package cmap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/swatchbook/pkg/errors"
)

// Category classifies a colormap by its intended use.
type Category string

// Colormap categories, following the colorcet naming convention.
const (
	CategoryLinear      Category = "linear"
	CategoryDiverging   Category = "diverging"
	CategoryCyclic      Category = "cyclic"
	CategoryRainbow     Category = "rainbow"
	CategoryIsoluminant Category = "isoluminant"
)

// validCategories is the set of recognized colormap categories.
var validCategories = map[Category]bool{
	CategoryLinear:      true,
	CategoryDiverging:   true,
	CategoryCyclic:      true,
	CategoryRainbow:     true,
	CategoryIsoluminant: true,
}

// Colormap maps a normalized value onto a color by interpolating between an
// ordered list of control colors. The zero value is not usable; construct
// colormaps with [New].
type Colormap struct {
	// Name is the canonical long name (e.g. "linear_kryw_0_100_c71").
	Name string

	// Category classifies the map (linear, diverging, ...).
	Category Category

	// Colors is the ordered list of control colors to interpolate between.
	Colors []color.RGBA
}

// New creates a colormap from six-digit hex control colors ("#rrggbb").
// At least two control colors are required.
func New(name string, category Category, hex []string) (*Colormap, error) {
	if err := errors.ValidateColormapName(name); err != nil {
		return nil, err
	}
	if !validCategories[category] {
		return nil, errors.New(errors.ErrCodeInvalidColormap, "unknown category %q for colormap %s", category, name)
	}
	if len(hex) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidColormap, "colormap %s needs at least 2 control colors, got %d", name, len(hex))
	}

	colors := make([]color.RGBA, len(hex))
	for i, h := range hex {
		if err := errors.ValidateHexColor(h); err != nil {
			return nil, err
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColormap, err, "colormap %s color %d", name, i)
		}
		r, g, b := c.RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	return &Colormap{Name: name, Category: category, Colors: colors}, nil
}

// MustNew is like [New] but panics on error. Intended for the built-in
// catalog and tests.
func MustNew(name string, category Category, hex []string) *Colormap {
	cm, err := New(name, category, hex)
	if err != nil {
		panic(err)
	}
	return cm
}

// At returns the color for a normalized value in [0, 1], interpolating
// linearly between the two nearest control colors. Values outside the range
// are clamped; NaN maps to the first control color.
func (cm *Colormap) At(t float64) color.RGBA {
	nc := len(cm.Colors)
	if nc == 0 {
		return color.RGBA{}
	}
	if math.IsNaN(t) || t <= 0 {
		return cm.Colors[0]
	}
	if t >= 1 || nc == 1 {
		return cm.Colors[nc-1]
	}

	ival := t * float64(nc-1)
	lo := int(math.Floor(ival))
	hi := int(math.Ceil(ival))
	if lo == hi {
		return cm.Colors[lo]
	}

	frac := ival - float64(lo)
	blended := toColorful(cm.Colors[lo]).BlendRgb(toColorful(cm.Colors[hi]), frac).Clamped()
	r, g, b := blended.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Reversed returns the reverse-ordered counterpart of the colormap, named
// with the standard "_r" suffix.
func (cm *Colormap) Reversed() *Colormap {
	colors := make([]color.RGBA, len(cm.Colors))
	for i, c := range cm.Colors {
		colors[len(colors)-1-i] = c
	}
	return &Colormap{
		Name:     cm.Name + ReversedSuffix,
		Category: cm.Category,
		Colors:   colors,
	}
}

// Palette samples the colormap into an n-entry lookup table of hex strings.
func (cm *Colormap) Palette(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = HexString(cm.At(t))
	}
	return out
}

// HexString formats a color as "#rrggbb".
func HexString(c color.RGBA) string {
	return toColorful(c).Hex()
}

// toColorful converts an RGBA control color into colorful's float form.
func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
