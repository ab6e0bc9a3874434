package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swatchbook/pkg/render/term"
)

// listCommand creates the list command showing the catalog as a terminal grid.
func (c *CLI) listCommand() *cobra.Command {
	var (
		columns int
		width   int
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all colormaps with their aliases",
		Long: `List the colormap catalog as a grid of color bars.

Each row shows one colormap group: every alias pointing at the same
colormap is collapsed into a single label, and reversed variants
(names ending in _r) are folded into their forward form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			labeled := reg.Labeled()

			if plain {
				for _, l := range labeled {
					fmt.Println(l.Label)
				}
				return nil
			}

			out, err := term.Grid(labeled, columns, width)
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render("Colormap Catalog"))
			fmt.Println()
			fmt.Print(out)
			printDetail("%d groups, %d registered names", len(labeled), reg.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&columns, "columns", defaultListColumns, "number of grid columns")
	cmd.Flags().IntVarP(&width, "width", "w", term.DefaultBarWidth, "color bar width in cells")
	cmd.Flags().BoolVar(&plain, "plain", false, "print labels only, one per line")

	return cmd
}
