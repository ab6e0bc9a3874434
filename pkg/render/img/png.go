// Package img renders colormap swatches as PNG and SVG artifacts.
package img

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/errors"
	"github.com/matzehuels/swatchbook/pkg/grid"
)

// Cell is one sheet cell: a collapsed alias group, or the zero value as the
// blank placeholder that pads the last column.
type Cell = cmap.Labeled[*cmap.Colormap]

// Default artifact geometry.
const (
	DefaultStripWidth  = 512
	DefaultStripHeight = 48
	DefaultCellWidth   = 360
	DefaultCellHeight  = 36
	DefaultColumns     = 4
)

// Sheet spacing in pixels.
const (
	sheetPadding = 16 // outer margin and gap between cells
	labelHeight  = 18 // space above each swatch for its label
)

// StripPNG renders a single colormap as a horizontal PNG swatch strip.
func StripPNG(cm *cmap.Colormap, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "strip size must be positive, got %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	drawStrip(dc, cm, 0, 0, width, height)
	return encodePNG(dc)
}

// SheetPNG renders labeled colormaps as a labeled catalog sheet in a
// newspaper-column arrangement. The sheet is always a perfect rectangle;
// cells past the last colormap stay blank.
func SheetPNG(cells []Cell, columns, cellWidth, cellHeight int) ([]byte, error) {
	if len(cells) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sheet needs at least one colormap")
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cell size must be positive, got %dx%d", cellWidth, cellHeight)
	}

	arranged, err := grid.Layout(cells, columns, Cell{})
	if err != nil {
		return nil, err
	}
	rows := grid.Rows(len(cells), columns)

	width := sheetPadding + columns*(cellWidth+sheetPadding)
	height := sheetPadding + rows*(labelHeight+cellHeight+sheetPadding)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			cell := arranged[r*columns+c]
			if cell.Value == nil {
				continue
			}
			x := sheetPadding + c*(cellWidth+sheetPadding)
			y := sheetPadding + r*(labelHeight+cellHeight+sheetPadding)

			dc.SetRGB255(60, 60, 60)
			dc.DrawString(cell.Label, float64(x), float64(y+labelHeight-5))
			drawStrip(dc, cell.Value, x, y+labelHeight, cellWidth, cellHeight)
		}
	}
	return encodePNG(dc)
}

// drawStrip paints one swatch strip column by column.
func drawStrip(dc *gg.Context, cm *cmap.Colormap, x, y, width, height int) {
	if cm == nil {
		return
	}
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := cm.At(t)
		dc.SetRGB255(int(c.R), int(c.G), int(c.B))
		dc.DrawRectangle(float64(x+i), float64(y), 1, float64(height))
		dc.Fill()
	}
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
