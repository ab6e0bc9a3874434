package img

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/errors"
)

// StripSVG renders a single colormap as an SVG gradient strip. The control
// colors become gradient stops, so the output stays resolution-independent
// and small regardless of the requested size.
func StripSVG(cm *cmap.Colormap, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "strip size must be positive, got %dx%d", width, height)
	}
	if cm == nil || len(cm.Colors) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidColormap, "colormap has no control colors")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <defs>`+"\n")
	fmt.Fprintf(&buf, `    <linearGradient id="swatch" x1="0" y1="0" x2="1" y2="0">`+"\n")

	n := len(cm.Colors)
	for i, c := range cm.Colors {
		offset := float64(i) / float64(n-1) * 100
		fmt.Fprintf(&buf, `      <stop offset="%.2f%%" stop-color="%s"/>`+"\n", offset, cmap.HexString(c))
	}

	fmt.Fprintf(&buf, `    </linearGradient>`+"\n")
	fmt.Fprintf(&buf, `  </defs>`+"\n")
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="url(#swatch)"/>`+"\n", width, height)
	fmt.Fprintf(&buf, `</svg>`+"\n")
	return buf.Bytes(), nil
}
