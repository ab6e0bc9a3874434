package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swatchbook/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file (single) or directory (--all)
	format      string // output format: png, svg, or json
	width       int    // strip width in pixels
	height      int    // strip height in pixels
	paletteSize int    // sample count for JSON export
	columns     int    // sheet column count
	refresh     bool   // bypass the cache
	all         bool   // render every alias group
	sheet       bool   // render the catalog contact sheet
}

// renderCommand creates the render command for generating swatch files.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatPNG}

	cmd := &cobra.Command{
		Use:   "render [name]",
		Short: "Render colormap swatches to files",
		Long: `Render colormap swatches as PNG or SVG strips, or export the
sampled palette as JSON.

With --all, every alias group in the catalog is rendered. With --sheet,
the whole catalog is rendered into a single labeled contact sheet PNG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}

			switch {
			case opts.sheet:
				return runSheet(cmd.Context(), runner, &opts)
			case opts.all:
				return runRenderAll(cmd.Context(), runner, c, &opts)
			case len(args) == 1:
				return runRenderOne(cmd.Context(), runner, args[0], &opts)
			default:
				return fmt.Errorf("provide a colormap name, or use --all or --sheet")
			}
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (or directory with --all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png (default), svg, json")
	cmd.Flags().IntVar(&opts.width, "width", 0, "strip width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "strip height in pixels")
	cmd.Flags().IntVar(&opts.paletteSize, "palette", 0, "sample count for JSON export")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "sheet column count")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every alias group")
	cmd.Flags().BoolVar(&opts.sheet, "sheet", false, "render the catalog contact sheet")

	return cmd
}

// swatchOptions converts the CLI flags into pipeline options for one format.
func (o *renderOpts) swatchOptions(format string) pipeline.SwatchOptions {
	return pipeline.SwatchOptions{
		Format:      format,
		Width:       o.width,
		Height:      o.height,
		PaletteSize: o.paletteSize,
		Refresh:     o.refresh,
	}
}

// runRenderOne renders a single swatch, once per requested format.
func runRenderOne(ctx context.Context, runner *pipeline.Runner, name string, opts *renderOpts) error {
	formats := parseFormats(opts.format)
	for _, format := range formats {
		res, err := runner.Swatch(ctx, name, opts.swatchOptions(format))
		if err != nil {
			return err
		}

		path := opts.output
		if path == "" || len(formats) > 1 {
			path = name + "." + res.Format
		}
		if err := writeArtifact(path, res.Data); err != nil {
			return err
		}

		printSuccess("Rendered %s", name)
		printFile(path)
		printStats(len(res.Data), res.Format, res.Cached)
	}
	return nil
}

// runRenderAll renders one swatch per alias group into a directory, using the
// representative name of each group for the file name.
func runRenderAll(ctx context.Context, runner *pipeline.Runner, c *CLI, opts *renderOpts) error {
	dir := opts.output
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	format := parseFormats(opts.format)[0]
	groups := runner.Registry().Labeled()
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d colormaps", len(groups)))
	spinner.Start()

	for _, g := range groups {
		if ctx.Err() != nil {
			break
		}
		res, err := runner.Swatch(ctx, g.Name, opts.swatchOptions(format))
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Render %s failed: %v", g.Name, err))
			return err
		}
		path := filepath.Join(dir, g.Name+"."+res.Format)
		if err := writeArtifact(path, res.Data); err != nil {
			spinner.StopWithError(fmt.Sprintf("Write %s failed: %v", path, err))
			return err
		}
	}

	if spinner.Cancelled() {
		spinner.Stop()
		return ctx.Err()
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d colormaps", len(groups)))
	printFile(dir + string(os.PathSeparator))
	prog.done(fmt.Sprintf("Wrote %d files", len(groups)))
	return nil
}

// runSheet renders the whole catalog into a single contact sheet PNG.
func runSheet(ctx context.Context, runner *pipeline.Runner, opts *renderOpts) error {
	if opts.format != pipeline.FormatPNG {
		return fmt.Errorf("sheet rendering only supports png, got %s", opts.format)
	}

	res, err := runner.Sheet(ctx, pipeline.SheetOptions{
		Columns: opts.columns,
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = "sheet.png"
	}
	if err := writeArtifact(path, res.Data); err != nil {
		return err
	}

	printSuccess("Rendered catalog sheet")
	printFile(path)
	printStats(len(res.Data), res.Format, res.Cached)
	return nil
}

// writeArtifact writes rendered bytes to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != string(os.PathSeparator) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}
