package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/render/term"
)

// showCommand creates the show command displaying one colormap in detail.
func (c *CLI) showCommand() *cobra.Command {
	var (
		width       int
		paletteSize int
		reversed    bool
	)

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a single colormap in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			cm, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			if reversed {
				cm = cm.Reversed()
			}

			fmt.Println(StyleTitle.Render(cm.Name))
			fmt.Println()
			printKeyValue("category", string(cm.Category))
			printKeyValue("aliases", strings.Join(aliasesOf(reg, args[0]), ", "))
			printKeyValue("stops", fmt.Sprintf("%d", len(cm.Colors)))
			fmt.Println()
			fmt.Println(term.Bar(cm, width))
			fmt.Println()
			fmt.Println(StyleDim.Render(strings.Join(cm.Palette(paletteSize), " ")))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", term.DefaultBarWidth, "color bar width in cells")
	cmd.Flags().IntVar(&paletteSize, "palette", 8, "number of sampled palette colors")
	cmd.Flags().BoolVarP(&reversed, "reversed", "r", false, "show the reversed variant")

	return cmd
}

// aliasesOf returns every registered name resolving to the same colormap as
// name, excluding reversed variants.
func aliasesOf(reg *cmap.Registry, name string) []string {
	cm, err := reg.Get(name)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range reg.Entries() {
		if e.Value == cm && !strings.HasSuffix(e.Name, cmap.ReversedSuffix) {
			out = append(out, e.Name)
		}
	}
	return out
}
