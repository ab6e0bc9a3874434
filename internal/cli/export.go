package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/pipeline"
)

// catalogEntry is the JSON schema for one alias group in a catalog export.
type catalogEntry struct {
	Label    string   `json:"label"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases"`
	Colors   []string `json:"colors"` // control stops, not the sampled LUT
}

// exportCommand creates the export command writing catalog data as JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output      string
		paletteSize int
	)

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export the catalog or one colormap as JSON",
		Long: `Export colormap data as JSON.

Without arguments, the whole catalog is exported as one document with the
control stops of every alias group. With a name, the sampled palette of
that single colormap is exported through the render pipeline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return c.exportOne(cmd, args[0], output, paletteSize)
			}
			return c.exportCatalog(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&paletteSize, "palette", 0, "sample count for single-map export")

	return cmd
}

// exportOne exports one colormap's sampled palette via the pipeline, so the
// artifact is cached like any other render.
func (c *CLI) exportOne(cmd *cobra.Command, name, output string, paletteSize int) error {
	runner, err := c.newRunner(cmd.Context())
	if err != nil {
		return err
	}

	res, err := runner.Swatch(cmd.Context(), name, pipeline.SwatchOptions{
		Format:      pipeline.FormatJSON,
		PaletteSize: paletteSize,
	})
	if err != nil {
		return err
	}
	return writeExport(output, res.Data)
}

// exportCatalog exports every alias group with its control stops.
func (c *CLI) exportCatalog(output string) error {
	reg, err := c.registry()
	if err != nil {
		return err
	}

	groups := reg.Labeled()
	entries := make([]catalogEntry, len(groups))
	for i, g := range groups {
		cm := g.Value
		colors := make([]string, len(cm.Colors))
		for j, col := range cm.Colors {
			colors[j] = cmap.HexString(col)
		}
		entries[i] = catalogEntry{
			Label:    g.Label,
			Name:     g.Name,
			Category: string(cm.Category),
			Aliases:  aliasesOf(reg, g.Name),
			Colors:   colors,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return writeExport(output, append(data, '\n'))
}

// writeExport writes data to the output file, or stdout when none is given.
func writeExport(output string, data []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := writeArtifact(output, data); err != nil {
		return err
	}
	printSuccess("Exported catalog data")
	printFile(output)
	return nil
}
