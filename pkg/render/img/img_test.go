package img

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/errors"
	"github.com/matzehuels/swatchbook/pkg/grid"
)

func testMap(t *testing.T) *cmap.Colormap {
	t.Helper()
	return cmap.MustNew("linear_test_0_100_c50", cmap.CategoryLinear,
		[]string{"#000000", "#ff0000", "#ffffff"})
}

func TestStripPNG(t *testing.T) {
	data, err := StripPNG(testMap(t), 64, 16)
	if err != nil {
		t.Fatalf("StripPNG: %v", err)
	}

	im, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := im.Bounds()
	if b.Dx() != 64 || b.Dy() != 16 {
		t.Errorf("bounds = %dx%d, want 64x16", b.Dx(), b.Dy())
	}

	// The strip starts black and ends white.
	r, g, bl, _ := im.At(0, 8).RGBA()
	if r != 0 || g != 0 || bl != 0 {
		t.Errorf("left pixel = (%d, %d, %d), want black", r, g, bl)
	}
	r, g, bl, _ = im.At(63, 8).RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Errorf("right pixel = (%d, %d, %d), want white", r, g, bl)
	}
}

func TestStripPNGInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 16}, {64, 0}, {-1, -1}} {
		_, err := StripPNG(testMap(t), size[0], size[1])
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("StripPNG(%dx%d) code = %v, want %v", size[0], size[1], errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	}
}

func TestSheetPNG(t *testing.T) {
	cm := testMap(t)
	cells := []Cell{
		{Label: "a", Name: "a", Value: cm},
		{Label: "b", Name: "b", Value: cm},
		{Label: "c", Name: "c", Value: cm},
		{Label: "d", Name: "d", Value: cm},
		{Label: "e", Name: "e", Value: cm},
	}

	columns, cellW, cellH := 2, 100, 20
	data, err := SheetPNG(cells, columns, cellW, cellH)
	if err != nil {
		t.Fatalf("SheetPNG: %v", err)
	}

	im, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rows := grid.Rows(len(cells), columns)
	wantW := sheetPadding + columns*(cellW+sheetPadding)
	wantH := sheetPadding + rows*(labelHeight+cellH+sheetPadding)
	b := im.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestSheetPNGEmpty(t *testing.T) {
	_, err := SheetPNG(nil, 2, 100, 20)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestSheetPNGInvalidColumns(t *testing.T) {
	cells := []Cell{{Label: "a", Name: "a", Value: testMap(t)}}
	_, err := SheetPNG(cells, 0, 100, 20)
	if !errors.Is(err, errors.ErrCodeInvalidColumns) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColumns)
	}
}

func TestStripSVG(t *testing.T) {
	data, err := StripSVG(testMap(t), 512, 48)
	if err != nil {
		t.Fatalf("StripSVG: %v", err)
	}

	svg := string(data)
	for _, want := range []string{
		`viewBox="0 0 512 48"`,
		`<linearGradient id="swatch"`,
		`stop-color="#000000"`,
		`stop-color="#ff0000"`,
		`stop-color="#ffffff"`,
		`fill="url(#swatch)"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	// First and last stops sit at the gradient ends.
	if !strings.Contains(svg, `offset="0.00%"`) || !strings.Contains(svg, `offset="100.00%"`) {
		t.Error("SVG missing endpoint stops")
	}
}

func TestStripSVGInvalid(t *testing.T) {
	if _, err := StripSVG(testMap(t), 0, 48); err == nil {
		t.Error("StripSVG(0 width) = nil error, want error")
	}
	if _, err := StripSVG(nil, 512, 48); err == nil {
		t.Error("StripSVG(nil) = nil error, want error")
	}
}
