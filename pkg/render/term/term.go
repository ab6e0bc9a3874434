// Package term renders colormap swatches for terminal display using
// truecolor background cells.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/grid"
)

// Cell is one grid cell: a collapsed alias group, or the zero value as the
// blank placeholder that pads the last column.
type Cell = cmap.Labeled[*cmap.Colormap]

// DefaultBarWidth is the default swatch width in terminal cells.
const DefaultBarWidth = 36

// Bar renders a colormap as a single line of width background-colored
// character cells, sampling the map left to right.
func Bar(cm *cmap.Colormap, width int) string {
	if cm == nil || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		hex := cmap.HexString(cm.At(t))
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	return b.String()
}

// Row renders one labeled colormap as two lines: the label, then the swatch
// bar beneath it.
func Row(label string, cm *cmap.Colormap, width int) string {
	return padLabel(label, width) + "\n" + Bar(cm, width)
}

// Grid renders labeled colormaps in a newspaper-column arrangement with the
// given column count and per-swatch width. Each grid row renders as a label
// line and a bar line; missing cells stay blank.
//
// Grid returns an INVALID_COLUMNS error when columns <= 0.
func Grid(cells []Cell, columns, width int) (string, error) {
	arranged, err := grid.Layout(cells, columns, Cell{})
	if err != nil {
		return "", err
	}

	rows := grid.Rows(len(cells), columns)
	var b strings.Builder
	for r := 0; r < rows; r++ {
		labels := make([]string, columns)
		bars := make([]string, columns)
		for c := 0; c < columns; c++ {
			cell := arranged[r*columns+c]
			labels[c] = padLabel(cell.Label, width)
			bars[c] = Bar(cell.Value, width)
		}
		b.WriteString(strings.Join(labels, gutter))
		b.WriteString("\n")
		b.WriteString(strings.Join(bars, gutter))
		b.WriteString("\n")
		if r < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// gutter separates grid columns.
const gutter = "  "

// padLabel pads or truncates a label to exactly width cells.
func padLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(label)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return fmt.Sprintf("%-*s", width, label)
}
