// Package render contains the output renderers for colormap swatches.
//
// # Overview
//
// Two sub-packages turn (label, colormap) pairs into visual output:
//
//   - term: truecolor terminal swatches built with lipgloss, for the
//     list/show/browse commands
//   - img: PNG swatch strips and catalog sheets drawn with gg, plus SVG
//     gradient strips, for file output and the HTTP server
//
// Both renderers arrange multi-cell output through the grid package, so a
// catalog sheet is always a perfect rows x columns rectangle padded with
// blank cells.
package render
